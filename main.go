package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"datagen/analyzer"
	"datagen/catalog"
	"datagen/generator"
	"datagen/quality"
	"datagen/storage"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// InitLogger Receives the log level to be set in go-logging as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	// Set the backends to be used.
	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	graderMode := flag.Bool("grader", false, "send the generated tables to the analyzer service for grading statistics")
	flag.Parse()

	config, err := InitConfig()
	if err != nil {
		log.Criticalf("%s", err)
		os.Exit(1)
	}

	if err := InitLogger(config.LogLevel); err != nil {
		log.Criticalf("%s", err)
		os.Exit(1)
	}
	log.Infof("Loaded config: %+v", config)

	bannerID, verificationCode, err := ReadBannerID(os.Stdin, os.Stdout)
	if err != nil {
		log.Criticalf("Could not read banner id: %v", err)
		os.Exit(1)
	}
	fmt.Printf("\nBanner ID confirmed: %d\n", bannerID)

	// The banner id is the only seed. Every draw of the run consumes from
	// this one stream, so the same id reproduces the dataset exactly.
	rng := rand.New(rand.NewSource(bannerID))

	products := catalog.Products()
	log.Infof("Catalog ready: %d products", len(products))

	sales := generator.Schedule(rng, products, time.Now())
	log.Infof("Generated %d transactions", len(sales))

	sales = quality.Inject(rng, sales)
	log.Infof("Data quality issues injected, %d rows total", len(sales))

	if *graderMode {
		if err := runAnalysis(config, products, sales); err != nil {
			log.Criticalf("Grader mode requires the analyzer service: %v", err)
			os.Exit(1)
		}
	}

	if err := storage.Save(config.DataDir, products, sales); err != nil {
		log.Criticalf("%s", err)
		os.Exit(1)
	}
	log.Infof("Saved %s", filepath.Join(config.DataDir, storage.ProductsFileName))
	log.Infof("Saved %s", filepath.Join(config.DataDir, storage.SalesFileName))

	printVerificationInfo(bannerID, verificationCode)
}

func runAnalysis(config *Config, products []catalog.Product, sales []generator.Transaction) error {
	if config.AnalyzerAddress == "" {
		return fmt.Errorf("analyzer-address is not configured")
	}

	client, err := analyzer.Dial(config.AnalyzerAddress, config.BatchSize)
	if err != nil {
		return err
	}
	defer client.Close()

	log.Infof("Sending tables to analyzer at %s (job %s)", config.AnalyzerAddress, client.JobID())
	if err := client.SendTable("products", storage.ProductColumns, storage.ProductRows(products)); err != nil {
		return err
	}
	if err := client.SendTable("sales", storage.SaleColumns, storage.SaleRows(sales)); err != nil {
		return err
	}
	log.Info("Analyzer accepted both tables")
	return nil
}

func printVerificationInfo(bannerID int64, verificationCode string) {
	fmt.Println("\n======================================================================")
	fmt.Println("DATA VERIFICATION INFORMATION")
	fmt.Println("======================================================================")
	fmt.Printf("banner id:          %d\n", bannerID)
	fmt.Printf("verification code:  %s\n", verificationCode)
	fmt.Println("Include those two lines at the top of your notebook submission!")
	fmt.Println("======================================================================")
}
