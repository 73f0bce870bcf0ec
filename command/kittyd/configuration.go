// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/authentication"
	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/configuration"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitties"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/kittyd/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"

	defaultLogDirectory = "log"
	defaultLogFile      = "kittyd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultNonceWindow = uint64(authentication.DefaultWindow / time.Second)
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	// seed of the randomness hash chain
	RandomSeed string `gluamapper:"random_seed" json:"random_seed"`

	// seconds a request nonce may differ from the local clock
	NonceWindow uint64 `gluamapper:"nonce_window" json:"nonce_window"`

	Fees kitties.Fees `gluamapper:"fees" json:"fees"`

	// base58 account → opening balance, credited once
	Endowments map[string]uint64 `gluamapper:"endowments" json:"endowments"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HTTPSRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Logging   logger.Configuration         `gluamapper:"logging" json:"logging"`
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

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Live,
		NonceWindow:   defaultNonceWindow,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      chain.DatabaseName(chain.Live),
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},
		HTTPSRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
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

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// database left at the live default follows the chain
	if chain.DatabaseName(chain.Live) == options.Database.Name {
		options.Database.Name = chain.DatabaseName(options.Chain)
	}

	if "" == options.RandomSeed {
		options.RandomSeed = chain.RandomSeed(options.Chain)
	}

	if 0 == options.NonceWindow {
		return nil, fmt.Errorf("nonce_window: must be greater than zero")
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[1] = util.EnsureAbsolute(options.DataDirectory, *f[1])
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d, err = util.MakeDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
	}

	// reject bad accounts before anything is started
	if _, err := options.endowments(); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// testing - accounts accepted by this node carry the test flag
func (c *Configuration) testing() bool {
	return chain.IsTesting(c.Chain)
}

func (c *Configuration) nonceWindow() time.Duration {
	return time.Duration(c.NonceWindow) * time.Second
}

// endowments - decoded in account order so every node credits identically
func (c *Configuration) endowments() ([]ledger.Endowment, error) {
	names := make([]string, 0, len(c.Endowments))
	for name := range c.Endowments {
		names = append(names, name)
	}
	sort.Strings(names)

	endowments := make([]ledger.Endowment, 0, len(names))
	for _, name := range names {
		owner, err := account.AccountFromBase58(name)
		if nil != err {
			return nil, fmt.Errorf("endowment: %q  error: %s", name, err)
		}
		if owner.IsTesting() != c.testing() {
			return nil, fmt.Errorf("endowment: %q  error: %s", name, fault.WrongNetwork)
		}
		endowments = append(endowments, ledger.Endowment{
			Owner:  owner,
			Amount: c.Endowments[name],
		})
	}
	return endowments, nil
}
