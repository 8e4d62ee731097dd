// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordmap/configuration"
	"github.com/bitmark-inc/ordmap/rpc/listeners"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLogDirectory = "log"
	defaultLogFile      = "ordmapd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients         = 10
	defaultBandwidth          = 25000000
	defaultPoolSize           = 0 // unlimited
	defaultStatisticsInterval = 60
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// StoreType - sizing of the in-memory store
type StoreType struct {
	PoolSize int `gluamapper:"pool_size" json:"pool_size"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory      string                     `gluamapper:"data_directory" json:"data_directory"`
	PidFile            string                     `gluamapper:"pidfile" json:"pidfile"`
	StatisticsInterval int                        `gluamapper:"statistics_interval" json:"statistics_interval"`
	Store              StoreType                  `gluamapper:"store" json:"store"`
	ClientRPC          listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging            logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:      defaultDataDirectory,
		PidFile:            "", // no PidFile by default
		StatisticsInterval: defaultStatisticsInterval,

		Store: StoreType{
			PoolSize: defaultPoolSize,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultBandwidth,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.Store.PoolSize < 0 {
		return nil, fmt.Errorf("Store: pool_size: %d must not be negative", options.Store.PoolSize)
	}
	if options.StatisticsInterval <= 0 {
		return nil, fmt.Errorf("Statistics: interval: %d must be positive", options.StatisticsInterval)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// the log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// create directories if they do not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// replace the certificate and key file names by their PEM contents
func loadCertificates(rpcConfiguration listeners.RPCConfiguration) (*listeners.RPCConfiguration, error) {
	if !configuration.EnsureFileExists(rpcConfiguration.Certificate) {
		return nil, fmt.Errorf("certificate: %q does not exist", rpcConfiguration.Certificate)
	}
	if !configuration.EnsureFileExists(rpcConfiguration.PrivateKey) {
		return nil, fmt.Errorf("private key: %q does not exist", rpcConfiguration.PrivateKey)
	}

	certificate, err := os.ReadFile(rpcConfiguration.Certificate)
	if nil != err {
		return nil, err
	}
	key, err := os.ReadFile(rpcConfiguration.PrivateKey)
	if nil != err {
		return nil, err
	}

	rpcConfiguration.Certificate = string(certificate)
	rpcConfiguration.PrivateKey = string(key)
	return &rpcConfiguration, nil
}
