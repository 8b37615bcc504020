// Copyright © 2025 Ballista contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/configcmd.go
// Summary: Reading and editing ballista.json from the command line.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/framegrace/ballista/config"
	"github.com/framegrace/ballista/internal/logging"
)

func (s *session) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or change ballista.json",
		Long: `Read or change ballista.json. Keys are "section.key" (launch.notifier)
or a bare root key (logLevel). Changes apply from the next run.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				section, key := config.SplitKey(args[0])
				val, ok := config.System().Lookup(section, key)
				if !ok {
					return errors.Errorf("no config key %q", args[0])
				}
				if str, isString := val.(string); isString {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), str)
					return err
				}
				data, err := json.MarshalIndent(val, "", "  ")
				if err != nil {
					return errors.Wrapf(err, "encode %s", args[0])
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change one configuration value",
			Long: `Change one configuration value. The value is read as JSON when it parses
(true, 250, ["foot","-e"]) and as a plain string otherwise.`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return setConfigValue(args[0], args[1])
			},
		},
	)
	return cmd
}

func setConfigValue(path, raw string) error {
	section, key := config.SplitKey(path)
	if key == "" {
		return errors.Errorf("invalid config key %q", path)
	}
	if err := config.Reload(); err != nil {
		return errors.Wrap(err, "reload config")
	}

	cfg := config.Clone(config.System())
	if section == "" && cfg.Section(key) != nil {
		return errors.Errorf("%q is a section; set one of its keys", key)
	}
	cfg.Set(section, key, parseConfigValue(raw))
	config.SetSystem(cfg)
	if err := config.SaveSystem(); err != nil {
		return err
	}
	logging.For("cli").Debug().Str("key", path).Msg("Config updated")
	return nil
}

func parseConfigValue(raw string) interface{} {
	var val interface{}
	if err := json.Unmarshal([]byte(raw), &val); err != nil {
		return raw
	}
	return val
}
