// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
//
// Allow maps an endpoint name (rpc, details, family) to the CIDR
// blocks that may use it; endpoints without an entry are open
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

// HTTPHandler - endpoints served under /kittyd/
type HTTPHandler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Family(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type httpsListener struct {
	sync.Mutex
	log             *logger.L
	listenIPAndPort []string
	ipType          []string
	tlsConfig       *tls.Config
	mux             *http.ServeMux
	servers         []*http.Server
	done            sync.WaitGroup
}

// NewHTTPS - validate the configuration and create a listener
//
// returns nil, nil when no listen address is configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	count *counter.Counter,
	tlsConfig *tls.Config,
	handler HTTPHandler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if nil == tlsConfig {
		log.Errorf("%s: certificate is required", httpsLogName)
		return nil, fault.MissingParameters
	}

	listen := make([]string, len(configuration.Listen))
	copy(listen, configuration.Listen)

	ipType, err := parseListenAddress(listen, log)
	if nil != err {
		return nil, err
	}

	allow := make(map[string][]*net.IPNet)
	for name, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		for i, address := range addresses {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(address))
			if nil != err {
				log.Errorf("%s: allow: %q  error: %s", httpsLogName, address, err)
				return nil, err
			}
			set[i] = cidr
		}
		allow[name] = set
	}
	handler.SetAllow(allow)

	maximum := configuration.MaximumConnections
	limited := func(f http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !count.Acquire(maximum) {
				TooManyRequests(w)
				return
			}
			defer count.Decrement()
			f(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/kittyd/rpc", limited(handler.RPC))
	mux.HandleFunc("/kittyd/details", limited(handler.Details))
	mux.HandleFunc("/kittyd/family", limited(handler.Family))
	mux.HandleFunc("/", limited(handler.Root))

	config := tlsConfig.Clone()
	config.NextProtos = []string{"http/1.1"}

	return &httpsListener{
		log:             log,
		listenIPAndPort: listen,
		ipType:          ipType,
		tlsConfig:       config,
		mux:             mux,
	}, nil
}

// Serve - open every listen address and start the HTTP servers
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)

		l, err := net.Listen(h.ipType[i], listen)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			h.closeAll()
			return err
		}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		h.done.Add(1)
		go func() {
			defer h.done.Done()
			err := s.Serve(tls.NewListener(l, h.tlsConfig))
			h.log.Infof("%s serve terminated: %s", httpsLogName, err)
		}()
	}
	return nil
}

// Stop - close the servers and wait for them to finish
func (h *httpsListener) Stop() {
	h.Lock()
	h.closeAll()
	h.Unlock()
	h.done.Wait()
}

func (h *httpsListener) closeAll() {
	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
}

// ErrorReply - body of every failed HTTPS request
type ErrorReply struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// WriteError - send status code with a JSON ErrorReply body
func WriteError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(ErrorReply{Code: code, Error: message})
}

// TooManyRequests - the connection limit is reached
func TooManyRequests(w http.ResponseWriter) {
	WriteError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
}
