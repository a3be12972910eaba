// Package log 提供zkbridge系统的日志级别接口定义
//
// 📊 **日志级别管理 (Log Level Management)**
//
// 本文件定义了日志级别的兼容别名，专注于：
// - 统一的日志级别定义
// - 日志级别的管理和控制
//
// 🔗 **组件关系**
// - Level：被日志记录器、配置系统等模块使用
package log

import "github.com/weisyn/zkbridge/pkg/types"

// 兼容别名（定义位于 pkg/types）
type LogLevel = types.LogLevel

// 常量别名
const (
	DebugLevel = types.DebugLevel
	InfoLevel  = types.InfoLevel
	WarnLevel  = types.WarnLevel
	ErrorLevel = types.ErrorLevel
	FatalLevel = types.FatalLevel
)
