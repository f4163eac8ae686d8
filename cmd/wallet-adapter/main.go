// wallet-adapter 弹窗钱包适配器命令行工具
//
// 通过授权方的弹窗页面完成连接与签名，私钥始终留在授权方。
package main

func main() {
	Execute()
}
