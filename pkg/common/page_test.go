package common

import (
	// 外部依赖
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageReqNormalize(t *testing.T) {
	cases := []struct {
		name     string
		in       PageReq
		page     int
		pageSize int
	}{
		{name: "zero value", in: PageReq{}, page: 1, pageSize: 20},
		{name: "negative page", in: PageReq{Page: -3, PageSize: 10}, page: 1, pageSize: 10},
		{name: "oversized page size", in: PageReq{Page: 2, PageSize: 10000}, page: 2, pageSize: 200},
		{name: "kept as is", in: PageReq{Page: 5, PageSize: 50}, page: 5, pageSize: 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.in.Normalize()
			assert.Equal(t, c.page, c.in.Page)
			assert.Equal(t, c.pageSize, c.in.PageSize)
		})
	}
}

func TestPageReqOffest(t *testing.T) {
	p := PageReq{Page: 3, PageSize: 20}
	p.Normalize()
	assert.Equal(t, 40, p.Offest())

	first := PageReq{}
	first.Normalize()
	assert.Equal(t, 0, first.Offest())
}
