// lootvault-server serves the inventory/combat demo over SSH: every
// connection gets its own world and screen. Build:
//
//	go build -o lootvault-server ./cmd/server
//
// Usage:
//
//	./lootvault-server [--port 2222] [--key server_host_key] [--catalog scenario.yaml]
//
// Connect with:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"

	"lootvault/internal/catalog"
	"lootvault/internal/demo"
	internalssh "lootvault/internal/ssh"
)

var log = newLogger()

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	catalogPath := flag.String("catalog", "", "YAML scenario catalog (built-in scenario when empty)")
	flag.Parse()

	cat := catalog.Default()
	if *catalogPath != "" {
		var err error
		cat, err = catalog.Load(*catalogPath)
		if err != nil {
			log.WithError(err).Fatal("load catalog")
		}
	}

	signer := loadOrCreateHostKey(*keyFile)
	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, cat)
		},
		// Accept PTY requests from any client; no auth — this is a demo
		// surface, not a multiplayer service.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.WithField("port", *port).Info("lootvault SSH server listening")
	log.Fatal(srv.ListenAndServe())
}

// handleSession runs one isolated demo session for the connection. It
// blocks for the duration of the connection.
func handleSession(s gossh.Session, cat catalog.Catalog) {
	slog := log.WithField("remote", s.RemoteAddr().String())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This demo requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty; termMu serializes that around creation.
	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	sess, err := demo.NewSession(screen, cat)
	if err != nil {
		screen.Fini()
		slog.WithError(err).Error("session setup failed")
		return
	}

	slog.Info("session started")
	sess.Run()
	screen.Fini()
	slog.Info("session ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// newLogger builds the process logger; level and format come from the
// LOG_LEVEL and LOG_FORMAT environment variables.
func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.WithField("path", path).Info("loaded host key")
			return signer
		}
	}

	log.WithField("path", path).Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.WithError(err).Fatal("generate host key")
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.WithError(err).Fatal("create signer")
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "lootvault server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
