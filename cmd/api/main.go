package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/luvitbd/attendance-app-go/internal/config"
	appHTTP "github.com/luvitbd/attendance-app-go/internal/handler/http"
	"github.com/luvitbd/attendance-app-go/internal/pkg/geoip"
	"github.com/luvitbd/attendance-app-go/internal/pkg/imagehost"
	attendanceService "github.com/luvitbd/attendance-app-go/internal/service/attendance"
	evidenceService "github.com/luvitbd/attendance-app-go/internal/service/evidence"
	locationService "github.com/luvitbd/attendance-app-go/internal/service/location"
	reportService "github.com/luvitbd/attendance-app-go/internal/service/report"
	"github.com/luvitbd/attendance-app-go/internal/session"
	"github.com/luvitbd/attendance-app-go/internal/upstream/attendanceapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	apiClient := attendanceapi.NewClient(cfg.Upstream)
	imageHost := imagehost.NewClient(cfg.Evidence)
	ipLookup := geoip.NewClient(cfg.Location)
	sessions := session.NewStore()

	resolver := locationService.NewResolver(ipLookup, cfg.Location.GPSTimeout)
	evidenceSvc := evidenceService.NewService(imageHost, cfg.Evidence.UploadDeadline)
	attendanceSvc := attendanceService.NewAttendanceService(
		apiClient,
		apiClient,
		resolver,
		evidenceSvc,
		sessions,
	)
	reportSvc := reportService.NewReportService(
		apiClient,
		apiClient,
		apiClient,
		apiClient,
	)

	ja := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg.App, ja, attendanceHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
