// Package app 提供zkbridge应用的依赖注入装配
//
// 📋 **应用装配模块**
//
// 本包通过fx依赖注入框架，将配置、日志、密码学服务和
// 证明工作流模块组装为完整应用，供CLI和外部函数接口使用。
package app

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	configimpl "github.com/weisyn/zkbridge/internal/config"
	cryptoimpl "github.com/weisyn/zkbridge/internal/core/infrastructure/crypto"
	logimpl "github.com/weisyn/zkbridge/internal/core/infrastructure/log"
	"github.com/weisyn/zkbridge/internal/core/zkproof"
)

// Modules 返回应用的全部fx模块
//
// 装配顺序：配置 → 日志 → 密码学 → 证明工作流
func Modules() fx.Option {
	return fx.Options(
		configimpl.Module(),
		logimpl.Module(),
		cryptoimpl.Module(),
		zkproof.Module(),
	)
}

// App zkbridge应用句柄
type App struct {
	fxApp   *fx.App
	manager *zkproof.Manager
}

// New 构建应用
//
// fx.New 执行全部构造函数和依赖注入，返回后 Manager 即可使用。
// Start/Stop 仅驱动生命周期钩子。
func New(extraOptions ...fx.Option) (*App, error) {
	app := &App{}

	options := []fx.Option{
		Modules(),
		fx.Populate(&app.manager),
		fx.NopLogger,
	}
	options = append(options, extraOptions...)

	app.fxApp = fx.New(options...)
	if err := app.fxApp.Err(); err != nil {
		return nil, fmt.Errorf("应用装配失败: %w", err)
	}

	return app, nil
}

// Manager 返回证明工作流管理器
func (a *App) Manager() *zkproof.Manager {
	return a.manager
}

// Start 启动应用生命周期
func (a *App) Start(ctx context.Context) error {
	return a.fxApp.Start(ctx)
}

// Stop 停止应用生命周期
func (a *App) Stop(ctx context.Context) error {
	return a.fxApp.Stop(ctx)
}
