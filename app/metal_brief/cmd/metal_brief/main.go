package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/iWorld-y/metal_radar/app/dashboard/pkg/client"
	"github.com/iWorld-y/metal_radar/app/metals/pkg/logger"

	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/config"
	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/engine"
	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/render"
	"github.com/iWorld-y/metal_radar/app/metal_brief/pkg/storage"
)

var flagconf string

func init() {
	flag.StringVar(&flagconf, "conf", "app/metal_brief/configs/config.yaml", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(flagconf)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Info("启动有色金属日报...")

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		logger.Log.Fatalf("无效的超时配置 %q: %v", cfg.Timeout, err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// 3. 初始化数据库连接，未配置时只生成 HTML
	var store engine.Store
	if cfg.DB.Host != "" {
		s, err := storage.NewStorage(ctx, cfg.DB)
		if err != nil {
			logger.Log.Errorf("无法连接数据库: %v. 将仅生成 HTML 文件。", err)
		} else {
			defer s.Close()
			store = s
			logger.Log.Info("已成功连接到数据库")
		}
	} else {
		logger.Log.Info("未配置数据库信息，跳过数据库连接")
	}

	// 4. 初始化 metals 接口客户端
	api := client.New(cfg.APIBase,
		client.WithHTTPClient(&http.Client{Timeout: timeout}),
		client.WithLogger(logger.NewKratosLogger(logger.Log)),
	)

	// 5. 生成日报
	brief, err := engine.NewEngine(cfg, api, store).Run(ctx, engine.RunOptions{
		ProgressCallback: func(status string, progress int) {
			logger.Log.Debugf("进度 %d%%: %s", progress, status)
		},
	})
	if err != nil {
		logger.Log.Fatalf("生成日报失败: %v", err)
	}

	// 6. 生成 HTML
	if err := render.WriteFile(cfg.Output, brief); err != nil {
		logger.Log.Fatalf("生成 HTML 失败: %v", err)
	}
	logger.Log.Infof("✅ 有色金属日报生成完毕: %s", cfg.Output)
}
