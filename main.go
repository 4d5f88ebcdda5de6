package main

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transfer-server/api"
	"github.com/carson-networks/transfer-server/internal/auth"
	"github.com/carson-networks/transfer-server/internal/config"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/operator"
	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/transfer"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("transfer-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, runtime.NumCPU())
	delegator.Start()
	defer delegator.Stop()

	guard := auth.NewGuard(dbStorage.Sessions)

	policy := transfer.Policy{
		MinAmount:  envConfig.TransferMinAmount,
		MaxAmount:  envConfig.TransferMaxAmount,
		DailyLimit: envConfig.TransferDailyLimit,
		MaxRetries: envConfig.TransferMaxRetries,
	}
	engine := transfer.NewEngine(
		dbStorage.Accounts,
		dbStorage.Ledger,
		operator.NewCommitter(delegator, envConfig.CommitTimeout),
		guard,
		policy,
		logger,
	)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger: logger,
			Port:   "9446",
			Engine: engine,
			Guard:  guard,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
