/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/blockmesh/InputParameters"
	"github.com/notargets/blockmesh/plotting"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print topology statistics for a mesh definition deck",
	Long: `Print topology statistics for a mesh definition deck, optionally
displaying an X-Y projection of the block mesh`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		deckFile, err := cmd.Flags().GetString("deck")
		if err != nil {
			panic(err)
		}
		if len(deckFile) == 0 {
			fmt.Printf("error: must supply a mesh definition deck (-d, --deck) in YAML format\n")
			os.Exit(1)
		}
		graph, _ := cmd.Flags().GetBool("graph")
		plotPoints, _ := cmd.Flags().GetBool("points")
		dr, _ := cmd.Flags().GetInt("delay")

		data, err := ioutil.ReadFile(deckFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		mp := &InputParameters.MeshParameters{}
		if err = mp.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		mp.Print()
		m, err := mp.BuildMesh()
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		m.PrintStatistics(os.Stdout)
		if graph {
			plotting.PlotMesh(m, plotPoints)
			time.Sleep(time.Duration(dr) * time.Millisecond)
		}
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().StringP("deck", "d", "", "YAML mesh definition deck to read")
	InfoCmd.Flags().BoolP("graph", "g", false, "display an X-Y projection of the block mesh")
	InfoCmd.Flags().BoolP("points", "p", false, "overlay the registered vertices on the graph")
	InfoCmd.Flags().IntP("delay", "t", 10000, "milliseconds to keep the graph window open")
}
