// zkbridge 零知识证明工作流命令行工具
package main

func main() {
	Execute()
}
