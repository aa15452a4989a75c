package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfrox/mcb2go/internal/api"
	"github.com/mfrox/mcb2go/internal/axis"
	"github.com/mfrox/mcb2go/internal/configuration"
	"github.com/mfrox/mcb2go/internal/controller"
	"github.com/mfrox/mcb2go/internal/dac"
	"github.com/mfrox/mcb2go/internal/encoder"
	"github.com/mfrox/mcb2go/internal/persistence"
	"github.com/mfrox/mcb2go/internal/pid"
	"github.com/mfrox/mcb2go/internal/statistics"
	"github.com/mfrox/mcb2go/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"periph.io/x/host/v3"
)

func RunDaemon() {
	if _, err := host.Init(); err != nil {
		ui.Fatal("Unable to initialize peripheral host drivers: %v", err)
	}

	pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	if err := pers.Init(); err != nil {
		ui.Fatal("Unable to initialize persistence: %v", err)
	}

	controllers := InitializeObjects(pers)
	if len(controllers) == 0 {
		ui.Fatal("No valid axis configurations, exiting.")
	}

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		enabled := configuration.CurrentConfig.Statistics.Enabled
		if enabled {
			// === Prometheus Exporter
			g.Add(func() error {
				port := configuration.CurrentConfig.Statistics.Port
				if port <= 0 || port >= 65535 {
					port = 9000
				}
				endpoint := "/metrics"
				addr := fmt.Sprintf(":%d", port)
				handler := promhttp.Handler()
				mux := http.NewServeMux()
				mux.Handle(endpoint, handler)
				server := &http.Server{Addr: addr, Handler: mux}

				go func() {
					<-ctx.Done()
					ui.Info("Stopping statistics server...")
					timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer timeoutCancel()
					_ = server.Shutdown(timeoutCtx)
				}()

				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start prometheus metrics endpoint (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				if err != nil {
					ui.Warning("Error stopping statistics server: " + err.Error())
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		enabled := configuration.CurrentConfig.Api.Enabled
		if enabled {
			// === REST Api
			restService := api.CreateRestService(pers)
			g.Add(func() error {
				port := configuration.CurrentConfig.Api.Port
				addr := fmt.Sprintf(":%d", port)

				go func() {
					<-ctx.Done()
					ui.Info("Stopping REST api...")
					timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer timeoutCancel()
					_ = restService.Shutdown(timeoutCtx)
				}()

				if err := restService.Start(addr); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start REST api endpoint (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				if err != nil {
					ui.Warning("Error stopping REST api: " + err.Error())
				} else {
					ui.Info("REST api stopped.")
				}
			})
		}
	}
	{
		// === axis controllers
		for _, c := range controllers {
			axisController := c
			g.Add(func() error {
				err := axisController.Run(ctx)
				ui.Info("Axis controller for axis %s stopped.", axisController.GetId())
				return err
			}, func(err error) {
				if err != nil {
					ui.Warning("Something went wrong: %v", err)
				}
				cancel()
			})
		}
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received SIGTERM signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// InitializeObjects builds the axes and their controllers from the
// current configuration and registers the metric collectors.
func InitializeObjects(pers persistence.Persistence) []controller.AxisController {
	var axisList []*axis.Axis
	var controllerList []controller.AxisController

	for _, config := range configuration.CurrentConfig.Axes {
		sensor, err := encoder.NewPositionSensor(config)
		if err != nil {
			ui.Fatal("Unable to process encoder configuration of axis %s: %v", config.ID, err)
		}

		output, err := dac.NewOutput(config)
		if err != nil {
			ui.Fatal("Unable to process dac configuration of axis %s: %v", config.ID, err)
		}

		gains := pid.Gains{
			Kp: config.Pid.Kp,
			Ki: config.Pid.Ki,
			Kd: config.Pid.Kd,
		}
		compensator := pid.NewController(gains, config.OutputRange.Min, config.OutputRange.Max)

		a, err := axis.NewAxis(config, sensor, compensator)
		if err != nil {
			ui.Fatal("Unable to process axis configuration: %s: %v", config.ID, err)
		}
		axis.RegisterAxis(a)
		axisList = append(axisList, a)

		axisController := controller.NewAxisController(
			pers,
			a,
			output,
			configuration.CurrentConfig.ControllerTickRate,
			configuration.CurrentConfig.MonitorPollingRate,
			configuration.CurrentConfig.VelocityWindowSize,
		)
		controllerList = append(controllerList, axisController)
	}

	axisCollector := statistics.NewAxisCollector(axisList)
	statistics.Register(axisCollector)

	controllerCollector := statistics.NewControllerCollector(controllerList)
	statistics.Register(controllerCollector)

	return controllerList
}
