// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - read-only kitty queries over HTTPS
//
// every endpoint runs through the same net/rpc server as the JSON-RPC
// listener, so rate limits and replies are identical
//
//   POST /kittyd/rpc              one JSON-RPC request, queries only
//   GET  /kittyd/details          Node.Info
//   GET  /kittyd/family?id=N      Genealogy.Family
package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"sync"

	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

const (
	maximumBodySize = 1 << 16

	notAllowed   = "method not allowed"
	forbidden    = "forbidden"
	notFound     = "not found"
	invalidID    = "invalid id"
	invalidBody  = "invalid request"
	serverFailed = "internal server error"
)

// methods that never change state
var queries = map[string]bool{
	"Kitties.Get":        true,
	"Kitties.Count":      true,
	"Owner.Kitties":      true,
	"Genealogy.Family":   true,
	"Genealogy.Children": true,
	"Balance.Get":        true,
	"Node.Info":          true,
}

// Handler - HTTPS endpoints over an RPC server
type Handler struct {
	log    *logger.L
	server *rpc.Server

	sync.RWMutex
	allow map[string][]*net.IPNet
}

// New - create a handler for the services registered on server
func New(log *logger.L, server *rpc.Server) *Handler {
	return &Handler{
		log:    log,
		server: server,
		allow:  map[string][]*net.IPNet{},
	}
}

// SetAllow - restrict endpoints by name to client networks
func (h *Handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

type rpcRequest struct {
	Id     uint64        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type rpcReply struct {
	Id     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  interface{}     `json:"error"`
}

// RPC - a single query in JSON-RPC 1.0 form
func (h *Handler) RPC(w http.ResponseWriter, r *http.Request) {
	if !h.permitted(w, r, "rpc", http.MethodPost) {
		return
	}

	body, err := ioutil.ReadAll(io.LimitReader(r.Body, maximumBodySize))
	if nil != err {
		listeners.WriteError(w, http.StatusBadRequest, invalidBody)
		return
	}

	var request struct {
		Method string `json:"method"`
	}
	if err := json.Unmarshal(body, &request); nil != err {
		listeners.WriteError(w, http.StatusBadRequest, invalidBody)
		return
	}
	if !queries[request.Method] {
		h.log.Warnf("rejected method: %q  from: %s", request.Method, r.RemoteAddr)
		listeners.WriteError(w, http.StatusForbidden, notAllowed)
		return
	}

	reply, err := h.serve(body)
	if nil != err {
		h.log.Errorf("rpc: %s  error: %s", request.Method, err)
		listeners.WriteError(w, http.StatusInternalServerError, serverFailed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(reply)
}

// Details - node status
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	if !h.permitted(w, r, "details", http.MethodGet) {
		return
	}
	h.query(w, "Node.Info", struct{}{})
}

// Family - parents, siblings and spouses of the kitty in ?id=
func (h *Handler) Family(w http.ResponseWriter, r *http.Request) {
	if !h.permitted(w, r, "family", http.MethodGet) {
		return
	}
	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 32)
	if nil != err {
		listeners.WriteError(w, http.StatusBadRequest, invalidID)
		return
	}
	h.query(w, "Genealogy.Family", map[string]uint64{"id": id})
}

// Root - anything else
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	listeners.WriteError(w, http.StatusNotFound, notFound)
}

// call one method and write only its result
func (h *Handler) query(w http.ResponseWriter, method string, arguments interface{}) {
	body, err := json.Marshal(rpcRequest{Method: method, Params: []interface{}{arguments}})
	if nil != err {
		listeners.WriteError(w, http.StatusInternalServerError, serverFailed)
		return
	}

	buffer, err := h.serve(body)
	if nil != err {
		h.log.Errorf("%s: error: %s", method, err)
		listeners.WriteError(w, http.StatusInternalServerError, serverFailed)
		return
	}

	var reply rpcReply
	if err := json.Unmarshal(buffer, &reply); nil != err {
		listeners.WriteError(w, http.StatusInternalServerError, serverFailed)
		return
	}
	if nil != reply.Error {
		listeners.WriteError(w, http.StatusBadRequest, toString(reply.Error))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(reply.Result)
}

// run one request through the RPC server in this goroutine
func (h *Handler) serve(body []byte) ([]byte, error) {
	var out bytes.Buffer
	codec := jsonrpc.NewServerCodec(&buffered{
		Reader: bytes.NewReader(body),
		Writer: &out,
	})
	if err := h.server.ServeRequest(codec); nil != err {
		return nil, err
	}
	return out.Bytes(), nil
}

// check HTTP method and client network
func (h *Handler) permitted(w http.ResponseWriter, r *http.Request, name string, method string) bool {
	if method != r.Method {
		listeners.WriteError(w, http.StatusMethodNotAllowed, notAllowed)
		return false
	}

	h.RLock()
	networks, restricted := h.allow[name]
	h.RUnlock()
	if !restricted {
		return true
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil == err {
		if ip := net.ParseIP(host); nil != ip {
			for _, network := range networks {
				if network.Contains(ip) {
					return true
				}
			}
		}
	}
	h.log.Warnf("%s: denied: %s", name, r.RemoteAddr)
	listeners.WriteError(w, http.StatusForbidden, forbidden)
	return false
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// in-memory connection for a single request
type buffered struct {
	io.Reader
	io.Writer
}

func (b *buffered) Close() error { return nil }
