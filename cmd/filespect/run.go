package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/filespect/filespect"
	"github.com/filespect/filespect/profile"
	"github.com/filespect/filespect/report"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := newLogger()

	format := viper.GetString("format")
	if format != "md" && format != "json" {
		return fmt.Errorf("unknown report format: %s", format)
	}

	delim := viper.GetString("delimiter")
	if len(delim) != 1 {
		return fmt.Errorf("delimiter must be a single character")
	}

	outDir := viper.GetString("out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	runLog := log.WithField("run_id", uuid.NewString())

	files := discover(args, viper.GetBool("recursive"), log)
	if len(files) == 0 {
		runLog.Warn("no supported files found")
		return nil
	}

	opts := profile.Options{
		TopN:         viper.GetInt("top"),
		UseStopwords: viper.GetBool("stopwords"),
		Delimiter:    delim[0],
	}

	workers := viper.GetInt("workers")
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	runLog.WithFields(logrus.Fields{
		"files":   len(files),
		"workers": workers,
		"format":  format,
	}).Info("starting analysis")

	var (
		wg     sync.WaitGroup
		failed int64
		jobs   = make(chan string)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for path := range jobs {
				// One corrupt file must never take down the batch.
				func() {
					defer func() {
						if r := recover(); r != nil {
							atomic.AddInt64(&failed, 1)
							runLog.WithField("file", path).Errorf("panic while profiling: %v", r)
						}
					}()

					if err := analyzeOne(path, format, outDir, opts, runLog); err != nil {
						atomic.AddInt64(&failed, 1)
						color.Red.Printf("[ERR] %s: %v\n", path, err)
						runLog.WithField("file", path).WithError(err).Error("analysis failed")
					}
				}()
			}
		}()
	}

	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	runLog.WithFields(logrus.Fields{
		"succeeded": int64(len(files)) - failed,
		"failed":    failed,
	}).Info("analysis complete")

	return nil
}

func analyzeOne(path, format, outDir string, opts profile.Options, log *logrus.Entry) error {
	req := filespect.Request{
		Path:     path,
		Kind:     resolveKind(path),
		MaxBytes: viper.GetInt64("max_bytes"),
		Options:  opts,
	}

	prof, err := filespect.Analyze(&req)
	if err != nil {
		return err
	}

	var out []byte
	if format == "json" {
		out, err = report.JSON(path, prof)
		if err != nil {
			return fmt.Errorf("cannot render report: %w", err)
		}
	} else {
		out = []byte(report.Markdown(path, prof))
	}

	dest := filepath.Join(outDir, report.FileName(path, format))
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}

	color.Green.Printf("[OK] %s → %s\n", filepath.Base(path), dest)
	log.WithFields(logrus.Fields{
		"file":   path,
		"report": dest,
		"kind":   prof.ProfileKind(),
	}).Debug("file profiled")

	return nil
}

func newLogger() *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if viper.GetBool("json_logs") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return log
}
