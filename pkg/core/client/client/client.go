package client

import (
	// 外部依赖
	"context"
	"regexp"
	"strings"

	// 内部引用
	common "github.com/warehub/warehub/service/pkg/common"
	code "github.com/warehub/warehub/service/pkg/common/code"
	core "github.com/warehub/warehub/service/pkg/core/client"
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
	model "github.com/warehub/warehub/service/pkg/model"
	repo "github.com/warehub/warehub/service/pkg/repo"
	repoAsset "github.com/warehub/warehub/service/pkg/repo/asset"
	repoClient "github.com/warehub/warehub/service/pkg/repo/client"
)

// codePattern 客户编码规则：2-10 位大写字母或数字
var codePattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

type clientImpl struct {
	clientStore repo.ClientRepo
	assetStore  repo.AssetRepo
}

func New() core.Service {
	return &clientImpl{
		clientStore: repoClient.NewClientRepo(),
		assetStore:  repoAsset.NewAssetRepo(),
	}
}

func (c *clientImpl) Insert(ctx context.Context, req *core.InsertReq) (*core.InsertResp, error) {
	clientCode := strings.ToUpper(strings.TrimSpace(req.Code))
	if !codePattern.MatchString(clientCode) {
		return nil, code.ClientCodeErr
	}

	data := &model.Client{
		Name:        strings.TrimSpace(req.Name),
		Code:        clientCode,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
	}
	if err := c.clientStore.CreateClient(ctx, data); err != nil {
		logger.Errorf(ctx, "CreateClient err: %+v", err)
		return nil, err
	}
	return &core.InsertResp{UUID: data.UUID}, nil
}

func (c *clientImpl) Query(ctx context.Context, req *core.QueryReq) (*common.PageResp[[]*core.ClientResponse], error) {
	q := repo.ClientQuery{}
	if req.Name != nil && *req.Name != "" {
		q.NameLike = req.Name
	}
	if req.Code != nil && *req.Code != "" {
		normalized := strings.ToUpper(*req.Code)
		q.Code = &normalized
	}

	req.Normalize()
	q.Offset = req.Offest()
	q.Limit = req.PageSize
	q.OrderBy = "id desc"

	list, total, err := c.clientStore.ListClients(ctx, q)
	if err != nil {
		return nil, err
	}

	resp := make([]*core.ClientResponse, 0, len(list))
	for _, item := range list {
		count, err := c.assetStore.CountAssets(ctx, repo.AssetQuery{ClientID: &item.ID})
		if err != nil {
			return nil, err
		}
		resp = append(resp, clientResponse(item, count))
	}
	return &common.PageResp[[]*core.ClientResponse]{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     resp,
	}, nil
}

func (c *clientImpl) Get(ctx context.Context, req *core.GetReq) (*core.ClientResponse, error) {
	data, err := c.clientStore.GetClientByUUID(ctx, req.UUID)
	if err != nil {
		return nil, err
	}
	count, err := c.assetStore.CountAssets(ctx, repo.AssetQuery{ClientID: &data.ID})
	if err != nil {
		return nil, err
	}
	return clientResponse(data, count), nil
}

func (c *clientImpl) Update(ctx context.Context, req *core.UpdateReq) error {
	data := map[string]any{}
	if req.Name != nil && *req.Name != "" {
		data["name"] = strings.TrimSpace(*req.Name)
	}
	if req.ContactName != nil {
		data["contact_name"] = *req.ContactName
	}
	if req.Email != nil {
		data["email"] = *req.Email
	}
	if req.Phone != nil {
		data["phone"] = *req.Phone
	}
	if len(data) == 0 {
		return nil
	}
	return c.clientStore.UpdateClientByUUID(ctx, req.UUID, data)
}

func (c *clientImpl) Delete(ctx context.Context, req *core.DeleteReq) error {
	data, err := c.clientStore.GetClientByUUID(ctx, req.UUID)
	if err != nil {
		return err
	}

	count, err := c.assetStore.CountAssets(ctx, repo.AssetQuery{ClientID: &data.ID})
	if err != nil {
		return err
	}
	// 仍有资产归属时不做物理删除，只停用
	if count > 0 {
		return c.clientStore.DeactivateClient(ctx, req.UUID)
	}
	return c.clientStore.DeleteClient(ctx, req.UUID)
}

func clientResponse(data *model.Client, assetCount int64) *core.ClientResponse {
	return &core.ClientResponse{
		UUID:        data.UUID,
		Name:        data.Name,
		Code:        data.Code,
		ContactName: data.ContactName,
		Email:       data.Email,
		Phone:       data.Phone,
		AssetCount:  assetCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
