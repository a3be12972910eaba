package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// TestModules_Validate 测试模块依赖图完整
func TestModules_Validate(t *testing.T) {
	err := fx.ValidateApp(Modules())
	require.NoError(t, err)
}

// TestNew 测试应用装配和生命周期
func TestNew(t *testing.T) {
	app, err := New()
	require.NoError(t, err)
	require.NotNil(t, app.Manager())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, app.Start(ctx))
	require.NoError(t, app.Stop(ctx))
}

// TestNew_ManagerUsable 测试装配后的管理器可用
func TestNew_ManagerUsable(t *testing.T) {
	app, err := New()
	require.NoError(t, err)

	manager := app.Manager()
	require.True(t, manager.IsSchemeSupported("groth16"))
	require.True(t, manager.IsSchemeSupported("plonk"))
}
