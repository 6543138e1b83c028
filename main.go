package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"CurveBoard/internal/config"
	"CurveBoard/internal/controller"
	boardnet "CurveBoard/internal/net"
	"CurveBoard/internal/render"
	"CurveBoard/internal/state"
	"CurveBoard/internal/ui"
)

const discoverTimeout = 2 * time.Second

func main() {
	if len(os.Args) > 1 && os.Args[1] == "discover" {
		runDiscover()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[HOST] Failed to load config: %v", err)
	}

	scene := state.NewScene()
	ctrl := controller.New(scene, cfg.Settings)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shareLink := ""
	if cfg.ViewerEnabled {
		shareLink, err = startViewer(ctx, cfg, ctrl)
		if err != nil {
			log.Printf("[HOST] Viewer disabled: %v", err)
		}
	}

	log.Println("[HOST] Starting board")
	ui.RunApp(cfg, ctrl, shareLink)
}

// startViewer serves recorded frames to browsers and advertises the viewer
// over mDNS. Frames are published from the controller's change hook.
func startViewer(ctx context.Context, cfg *config.Config, ctrl *controller.Controller) (string, error) {
	_, portStr, err := net.SplitHostPort(cfg.ViewerAddr)
	if err != nil {
		return "", fmt.Errorf("parse viewer address %q: %w", cfg.ViewerAddr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", fmt.Errorf("parse viewer port %q: %w", portStr, err)
	}

	viewer := boardnet.NewViewer()
	rec := render.NewRecorder(int(cfg.WindowWidth), int(cfg.WindowHeight))
	// Hover moves that leave the picture unchanged are dropped by Publish.
	publish := func() {
		ctrl.Render(rec)
		if _, err := viewer.Publish(rec, ctrl.Scene().Revision()); err != nil {
			log.Printf("[HOST] Publish failed: %v", err)
		}
	}
	ctrl.OnChange = publish
	publish()

	go func() {
		if err := viewer.ListenAndServe(ctx, cfg.ViewerAddr); err != nil {
			log.Printf("[HOST] %v", err)
		}
	}()

	if cfg.Advertise {
		server, err := boardnet.Advertise(port)
		if err != nil {
			log.Printf("[HOST] mDNS advertise failed: %v", err)
		} else {
			go func() {
				<-ctx.Done()
				server.Shutdown()
			}()
		}
	}

	link := boardnet.ShareLink(cfg.ViewerAddr)
	log.Printf("[HOST] Viewer available at %s", link)
	return link, nil
}

// runDiscover prints the viewer links of boards advertised on the network.
func runDiscover() {
	links, err := boardnet.Discover(discoverTimeout)
	if err != nil {
		log.Fatalf("[HOST] Discovery failed: %v", err)
	}
	if len(links) == 0 {
		fmt.Println("No boards found")
		return
	}
	for _, link := range links {
		fmt.Println(link)
	}
}
