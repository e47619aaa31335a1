package mobile

import (
	"log"
	"net/http"

	"xiangqi/internal/config"
	httpserver "xiangqi/internal/server/http"
)

// StartServer 启动本地 HTTP 服务，给手机壳子里的 WebView 用。
// webDir: 解压出来的网页目录
// port:   监听端口，例如 "2888"
// depth:  普通难度的搜索深度，<=0 用默认
func StartServer(webDir string, port string, depth int) {
	cfg := config.Default()
	cfg.Addr = "127.0.0.1:" + port
	cfg.WebDir = webDir
	cfg.MobileWebDir = webDir
	cfg.OpenBrowser = false
	// 手机上串行搜索
	cfg.ParallelSearch = false
	if depth > 0 {
		cfg.NormalDepth = depth
	}

	h := httpserver.NewHandler(cfg)
	go h.Hub().Run(make(chan struct{}))

	// 后台跑，别卡住 Android UI 线程
	go func() {
		if err := http.ListenAndServe(cfg.Addr, h.Router()); err != nil {
			log.Printf("[server] %v", err)
		}
	}()
}
