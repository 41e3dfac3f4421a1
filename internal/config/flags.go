// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d local storage DSN
//	-c/-config json file path with settings
//	-cbioportal-url portal host the API root is derived from
//	-genome-nexus-url Genome Nexus host override
//	-injected-config injected global configuration file (JSON or YAML)
//	-page-location URL of the page hosting the front-end
//	-url-scheme scheme for outbound requests (http or https)
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-adapter-timeout outbound request timeout (e.g., "10s")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var cbioportalURL string
	var genomeNexusURL string
	var injectedConfigPath string
	var pageLocation string
	var urlScheme string
	var requestTimeout time.Duration
	var adapterTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local storage DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cbioportalURL, "cbioportal-url", "", "cBioPortal host")
	flag.StringVar(&genomeNexusURL, "genome-nexus-url", "", "Genome Nexus host")
	flag.StringVar(&injectedConfigPath, "injected-config", "", "Injected front-end configuration file")
	flag.StringVar(&pageLocation, "page-location", "", "URL of the page hosting the front-end")
	flag.StringVar(&urlScheme, "url-scheme", "", "Scheme for outbound requests (http or https)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 10s)")

	flag.Parse()

	return &StructuredConfig{
		Build: Build{
			CBioPortalURL:  cbioportalURL,
			GenomeNexusURL: genomeNexusURL,
		},
		Frontend: Frontend{
			InjectedConfigPath: injectedConfigPath,
			PageLocation:       pageLocation,
			URLScheme:          urlScheme,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
