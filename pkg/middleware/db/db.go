package db

import (
	// 外部依赖
	"context"
	"fmt"
	"time"

	postgres "gorm.io/driver/postgres"
	gorm "gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	tracing "gorm.io/plugin/opentelemetry/tracing"

	// 内部引用
	logger "github.com/warehub/warehub/service/pkg/middleware/logger"
)

type LogConf struct {
	Level string
}

type Config struct {
	Host   string
	Port   int
	User   string
	PW     string
	DBName string
	LogConf
}

// Datastore 持有全局 gorm 连接，事务通过 context 透传
type Datastore struct {
	db *gorm.DB
}

var ins *Datastore

func InitPostgres(ctx context.Context, conf *Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.Host, conf.User, conf.PW, conf.DBName, conf.Port)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel(conf.Level)),
		TranslateError: true,
	})
	if err != nil {
		logger.Fatalf(ctx, "open postgres err: %+v", err)
	}

	if err := gdb.Use(tracing.NewPlugin(tracing.WithDBSystem("postgresql"))); err != nil {
		logger.Fatalf(ctx, "install gorm otel plugin err: %+v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Fatalf(ctx, "get sql db err: %+v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ins = &Datastore{db: gdb}
}

func ClosePostgres(ctx context.Context) {
	if ins == nil {
		return
	}
	if sqlDB, err := ins.db.DB(); err == nil {
		_ = sqlDB.Close()
	} else {
		logger.Warnf(ctx, "close postgres err: %+v", err)
	}
}

func DB() *Datastore {
	return ins
}

func logLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}

type txKey struct{}

// DBIns 返回原始 gorm 句柄，仅供 migrate 等低层使用
func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

// DBWithContext 若 ctx 内存在进行中的事务则加入该事务
func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.db.WithContext(ctx)
}

// ExecTx 在事务中执行 fn，嵌套调用时复用外层事务
func (d *Datastore) ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
