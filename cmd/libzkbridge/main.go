// libzkbridge 零知识证明工作流的C ABI边界
//
// 构建方式: go build -buildmode=c-shared -o libzkbridge.so ./cmd/libzkbridge
//
// 调用约定:
//   - 导出函数返回 *char: NULL表示成功，非NULL为malloc分配的错误描述，
//     调用方必须用 zkbridge_free_string 释放
//   - 输出参数仅在返回NULL时被写入
//   - 证明验证不通过不是错误: *valid=false 且返回NULL
package main

/*
#include <stdlib.h>
#include <stdbool.h>
*/
import "C"

import (
	"context"
	"os"
	"sync"
	"unsafe"

	configimpl "github.com/weisyn/zkbridge/internal/config"
	logconfig "github.com/weisyn/zkbridge/internal/config/log"
	"github.com/weisyn/zkbridge/internal/core/infrastructure/crypto/hash"
	logimpl "github.com/weisyn/zkbridge/internal/core/infrastructure/log"
	"github.com/weisyn/zkbridge/internal/core/zkproof"
)

var (
	managerOnce sync.Once
	manager     *zkproof.Manager
	managerErr  error
)

// getManager 惰性初始化工作流管理器
//
// 配置文件路径从 ZKBRIDGE_CONFIG 环境变量读取，
// 初始化失败的错误在每次调用时重新返回。
func getManager() (*zkproof.Manager, error) {
	managerOnce.Do(func() {
		appConfig, err := configimpl.LoadAppConfig(os.Getenv("ZKBRIDGE_CONFIG"))
		if err != nil {
			managerErr = err
			return
		}
		provider := configimpl.NewProvider(appConfig)

		logger, err := logimpl.New(logconfig.NewFromProvider(provider))
		if err != nil {
			managerErr = err
			return
		}

		manager = zkproof.NewManager(hash.NewHashService(), logger, provider)
	})
	return manager, managerErr
}

// errToCString 将错误转换为malloc分配的C字符串
func errToCString(err error) *C.char {
	return C.CString(err.Error())
}

//export zkbridge_simple_create_and_verify_proof
func zkbridge_simple_create_and_verify_proof(valid *C.bool) *C.char {
	if valid == nil {
		return C.CString("valid output pointer is NULL")
	}

	m, err := getManager()
	if err != nil {
		return errToCString(err)
	}

	// 内部恐慌已在边界适配器中转换为error，不会越过C ABI
	var goValid bool
	if err := m.CreateAndVerifyProof(context.Background(), &goValid); err != nil {
		return errToCString(err)
	}

	*valid = C.bool(goValid)
	return nil
}

//export zkbridge_free_string
func zkbridge_free_string(str *C.char) {
	if str != nil {
		C.free(unsafe.Pointer(str))
	}
}

func main() {}
