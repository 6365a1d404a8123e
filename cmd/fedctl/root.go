package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

const (
	// EnvServer overrides the registry API base URL.
	EnvServer = "FEDCTL_SERVER"

	// EnvActingUser supplies the acting user id for mutating commands.
	EnvActingUser = "FEDCTL_ACTING_USER"
)

type clientOptions struct {
	server     string
	actingUser string
}

func newRootCmd() *cobra.Command {
	opts := &clientOptions{}

	cmd := &cobra.Command{
		Use:           "fedctl",
		Short:         "Operate the federation registry",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", defaultEnv(EnvServer, "http://localhost:8080"), "registry API base URL")
	cmd.PersistentFlags().StringVar(&opts.actingUser, "acting-user", os.Getenv(EnvActingUser), "acting user id for mutating commands")

	cmd.AddCommand(newProvidersCmd(opts))
	cmd.AddCommand(newUsersCmd(opts))

	return cmd
}

func defaultEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// get issues a GET request and decodes the JSON response into out.
func (c *clientOptions) get(path string, out any) error {
	resp, err := http.Get(c.server + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(resp, out)
}

// post issues a POST request carrying the acting user header and decodes the
// JSON response into out.
func (c *clientOptions) post(path string, body any, out any) error {
	if c.actingUser == "" {
		return fmt.Errorf("acting user id required: use --acting-user or %s", EnvActingUser)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.server+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Acting-User", c.actingUser)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(resp, out)
}

func decode(resp *http.Response, out any) error {
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(data))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// printJSON renders a response value as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
