package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// export.go 测试
// ============================================================================

// TestExportCmd_WritesFile 测试导出命令将合约完整落盘后才报告成功
func TestExportCmd_WritesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "Verifier.sol")
	exportScheme = ""
	exportOutput = outPath
	defer func() { exportOutput = "" }()

	err := exportCmd.RunE(exportCmd, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "pragma solidity"))
}

// TestExportCmd_UnwritableOutput 测试输出文件无法创建时返回错误
func TestExportCmd_UnwritableOutput(t *testing.T) {
	// 目录路径不能作为输出文件打开
	exportOutput = t.TempDir()
	defer func() { exportOutput = "" }()

	err := exportCmd.RunE(exportCmd, nil)
	require.Error(t, err)
}
