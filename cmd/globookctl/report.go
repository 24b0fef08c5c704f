package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/globook/globook-backend/globook/model"
	"github.com/globook/globook-backend/pkg/kafka"
)

type reportFlags struct {
	brokers     string
	copyUID     int
	secret      string
	lat         float64
	lon         float64
	uncertainty float64
	message     string
	date        string
}

func newReportCmd() *cobra.Command {
	var f reportFlags
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Publish a catch report for a copy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := f.toReport(cmd.Flags().Changed("message"))
			if err != nil {
				return err
			}
			producer, err := kafka.NewProducer(kafka.Config{Addrs: strings.Split(f.brokers, ",")})
			if err != nil {
				return errors.Wrap(err, "kafka.NewProducer")
			}
			defer producer.Close()

			partition, offset, err := publishReport(producer, report)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reported copy %d (partition %d, offset %d)\n", report.CopyUID, partition, offset)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.brokers, "brokers", envOr("KAFKA_ADDRS", "localhost:9092"), "comma separated kafka brokers")
	cmd.Flags().IntVar(&f.copyUID, "copy", 0, "copy uid")
	cmd.Flags().StringVar(&f.secret, "secret", "", "copy secret")
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "latitude, EPSG:3857")
	cmd.Flags().Float64Var(&f.lon, "lon", 0, "longitude, EPSG:3857")
	cmd.Flags().Float64Var(&f.uncertainty, "uncertainty", 0, "location uncertainty radius")
	cmd.Flags().StringVar(&f.message, "message", "", "message for the next finder")
	cmd.Flags().StringVar(&f.date, "date", "", "catch time, defaults to now")
	_ = cmd.MarkFlagRequired("copy")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	_ = cmd.MarkFlagRequired("uncertainty")
	return cmd
}

func (f reportFlags) toReport(withMessage bool) (model.CatchReport, error) {
	report := model.CatchReport{
		CopyUID:     f.copyUID,
		Secret:      f.secret,
		Lat:         &f.lat,
		Lon:         &f.lon,
		Uncertainty: &f.uncertainty,
	}
	if withMessage {
		report.Message = &f.message
	}
	if f.date != "" {
		var ts model.Timestamp
		if err := ts.UnmarshalJSON([]byte(`"` + f.date + `"`)); err != nil {
			return model.CatchReport{}, err
		}
		report.Date = &ts
	} else {
		ts := model.NewTimestamp(time.Now().UTC())
		report.Date = &ts
	}
	return report, nil
}

func publishReport(producer sarama.SyncProducer, report model.CatchReport) (int32, int64, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return 0, 0, err
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.CatchTopic,
		Key:   sarama.StringEncoder(fmt.Sprint(report.CopyUID)),
		Value: sarama.ByteEncoder(data),
	}
	partition, offset, err := producer.SendMessage(msg)
	if err != nil {
		return 0, 0, errors.Wrap(err, "producer.SendMessage")
	}
	return partition, offset, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
