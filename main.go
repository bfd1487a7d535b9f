package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"flatdb/cmd/web"
	"flatdb/database"
)

var (
	dataDir string
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "flatdb",
		Short: "A minimal SQL query engine over flat on-disk records",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "directory holding table files")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(execCmd(), replCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <statement>",
		Short: "Execute a single SQL statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(dataDir)
			if err != nil {
				return err
			}
			res, err := db.Execute(args[0])
			if err != nil {
				return err
			}
			fmt.Println(res.String())
			return nil
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(dataDir)
			if err != nil {
				return err
			}

			fmt.Println("flatdb - type a statement, or 'exit' to quit")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("flatdb> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
					return nil
				}
				res, err := db.Execute(line)
				if err != nil {
					fmt.Println("Error:", err)
					continue
				}
				fmt.Println(res.String())
			}
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the query API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(dataDir)
			if err != nil {
				return err
			}
			api := web.New(db)
			http.HandleFunc("/query", api.Handle)
			logrus.WithField("addr", addr).Info("listening")
			return http.ListenAndServe(addr, nil)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
