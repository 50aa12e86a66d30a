package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sealkit/sealkit/internal/api/server"
)

// Serve command flags
var (
	servePort    int
	serveHost    string
	serveTLSCert string
	serveTLSKey  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the REST API server.

The server exposes the digest, HMAC, key and signature operations
over HTTP.

Environment variables:
  SEALKIT_PORT      Port to listen on
  SEALKIT_TLS_CERT  TLS certificate file
  SEALKIT_TLS_KEY   TLS private key file

Examples:
  # Start on the default port
  sealkit serve

  # Start with TLS
  sealkit serve --port 8443 --tls-cert server.crt --tls-key server.key`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: 8080)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default: all interfaces)")
	serveCmd.Flags().StringVar(&serveTLSCert, "tls-cert", "", "TLS certificate file")
	serveCmd.Flags().StringVar(&serveTLSKey, "tls-key", "", "TLS private key file")
}

func runServe(cmd *cobra.Command, args []string) error {
	applyServeEnvVars()

	cfg := server.DefaultConfig()
	if servePort != 0 {
		cfg.Port = servePort
	}
	cfg.Host = serveHost
	cfg.TLSCert = serveTLSCert
	cfg.TLSKey = serveTLSKey

	return server.New(cfg, version).Start()
}

// applyServeEnvVars fills unset flags from the environment.
func applyServeEnvVars() {
	if servePort == 0 {
		if v := os.Getenv("SEALKIT_PORT"); v != "" {
			if port, err := strconv.Atoi(v); err == nil {
				servePort = port
			}
		}
	}
	if serveTLSCert == "" {
		serveTLSCert = os.Getenv("SEALKIT_TLS_CERT")
	}
	if serveTLSKey == "" {
		serveTLSKey = os.Getenv("SEALKIT_TLS_KEY")
	}
}
