package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/pinger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pinger",
	Short: "Probe camera IPs and report their status to the inventory service",
	Long: `Fetches the camera IP list from the inventory service public API,
probes every camera over HTTP and reports active/inactive statuses back
in batches.`,
	RunE: run,
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("pinger")
	}

	viper.SetEnvPrefix("CCTV_PINGER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pinger.yaml)")
	flags.String("base-url", "http://localhost:1080", "inventory service base URL")
	flags.String("token", "", "device token sent as x-token")
	flags.String("device-id", "", "device id sent as x-id")
	flags.String("unique-number", "", "device unique number sent as x-unique-number")
	flags.Duration("interval", 0, "time between probe cycles (default 3s)")
	flags.Duration("probe-timeout", 0, "timeout of a single camera probe (default 1s)")
	flags.Int("concurrency", 0, "number of concurrent probes (default 16)")
	flags.Bool("once", false, "run a single cycle and exit")

	_ = viper.BindPFlags(flags)
}

func run(cmd *cobra.Command, _ []string) error {
	logger := common.GetLoggerWith(common.LoggerNamePinger)

	probeTimeout := viper.GetDuration("probe-timeout")
	if probeTimeout <= 0 {
		probeTimeout = common.DefaultProbeTimeout
	}

	client := pinger.NewClient(pinger.ClientConfig{
		BaseURL: viper.GetString("base-url"),
		Device: pinger.Device{
			Token:        viper.GetString("token"),
			ID:           viper.GetString("device-id"),
			UniqueNumber: viper.GetString("unique-number"),
		},
	})
	p := pinger.New(client, pinger.NewHTTPProber(probeTimeout), pinger.Options{
		Interval:    viper.GetDuration("interval"),
		Concurrency: viper.GetInt("concurrency"),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Pinger starting",
		zap.String("base_url", viper.GetString("base-url")),
		zap.String("device_id", viper.GetString("device-id")),
		zap.Duration("interval", p.Options.Interval),
	)

	if viper.GetBool("once") {
		_, err := p.RunOnce(ctx)
		return err
	}

	if err := p.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("Pinger stopped")
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
