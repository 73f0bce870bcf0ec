// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/kittyd/authentication"
)

const dialTimeout = 10 * time.Second

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// last nonce sent by this process, so requests within one
// millisecond differ
var nonces struct {
	sync.Mutex
	last uint64
}

// NewClient - create a RPC connection to a kittyd
//
// plain selects an unencrypted connection, otherwise TLS is used
// without certificate verification as nodes use self-signed
// certificates
func NewClient(connect string, plain bool, verbose bool, handle io.Writer) (*Client, error) {

	dialer := &net.Dialer{Timeout: dialTimeout}

	var conn net.Conn
	var err error
	if plain {
		conn, err = dialer.Dial("tcp", connect)
	} else {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.DialWithDialer(dialer, "tcp", connect, tlsConfig)
	}
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the kittyd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call - one request/reply with optional tracing
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method+" Request", arguments)

	err := c.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}

	c.printJson(method+" Reply", reply)
	return nil
}

// nextNonce - the clock in milliseconds, strictly increasing
func (c *Client) nextNonce() uint64 {
	nonces.Lock()
	defer nonces.Unlock()

	nonce := authentication.Nonce()
	if nonce <= nonces.last {
		nonce = nonces.last + 1
	}
	nonces.last = nonce
	return nonce
}

func (c *Client) printJson(title string, message interface{}) {
	if !c.verbose {
		return
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
