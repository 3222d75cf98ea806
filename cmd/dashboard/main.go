package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gilsanglab/eda2-marketing-dashboard/internal/config"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/parser"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/pipeline"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/server"
	"github.com/gilsanglab/eda2-marketing-dashboard/internal/util"
)

var (
	port    = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode = flag.Bool("dev", false, "开发模式")
	dataDir = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	preload = flag.String("file", "", "启动时预加载的订单表 (.csv / .xlsx)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  EDA2 - 전자상거래 마케팅 분석 대시보드")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 确保数据目录存在
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("创建数据目录失败: %v", err)
	} else {
		fmt.Printf("数据目录: %s\n", dir)
	}

	// 创建服务器
	srv := server.NewServer(cfg)

	// 预加载数据文件（批处理/演示用）
	if *preload != "" {
		if err := preloadFile(srv, cfg, *preload); err != nil {
			log.Printf("预加载 %s 失败: %v", *preload, err)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 启动服务器
	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 打开浏览器
	if !cfg.Server.DevMode {
		if err := util.OpenBrowser(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	}

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("\n服务已退出")
}

// preloadFile 启动时直接跑一遍完整流程并入库
func preloadFile(srv *server.Server, cfg *config.AppConfig, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := parser.Load(path, f)
	if err != nil {
		return err
	}

	ds, err := pipeline.Run(table, pipeline.Options{
		CapitalMarker: cfg.Business.CapitalMarker,
		SourceID:      path,
	})
	if err != nil {
		return err
	}

	srv.GetStore().Put(ds)
	fmt.Printf("预加载完成: %d 行，其中有效销售 %d 行\n", ds.TotalRows, ds.ValidRows)
	for _, w := range ds.Warnings {
		fmt.Printf("  警告: %s\n", w)
	}
	return nil
}
