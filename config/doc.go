// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package config loads httpc client settings from a config file, a .env
file and the environment, and builds a Client from them.

Settings are read in increasing order of precedence from built-in
defaults, the config file, and HTTPC_ prefixed environment variables
(a .env file, if given, is loaded into the environment first):

	cookie_store       HTTPC_COOKIE_STORE        enable the cookie store
	user_agent         HTTPC_USER_AGENT          User-Agent for every request
	request_id_header  HTTPC_REQUEST_ID_HEADER   header to stamp with a UUID
	throttle.rps       HTTPC_THROTTLE_RPS        requests per second, 0 = off
	throttle.burst     HTTPC_THROTTLE_BURST      token bucket size
	log_level          HTTPC_LOG_LEVEL           zerolog level name
	tracing            HTTPC_TRACING             wrap the backend in a span

Typical use:

	cfg, err := config.Load(config.WithConfigFile("httpc.yml"))
	...
	client, err := cfg.NewClient(config.WithLogOutput(os.Stderr))
*/
package config
