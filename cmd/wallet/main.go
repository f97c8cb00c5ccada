// Command wallet 钱包状态服务与命令行工具
//
//	wallet serve          启动服务（HTTP查询、WebSocket推送、指标、定时同步）
//	wallet sync           执行一次同步，或通过 --remote 请求运行中的服务同步
//	wallet watch          订阅运行中服务的忙碌状态
//	wallet about          关于
//	wallet version        版本信息
package main

func main() {
	Execute()
}
