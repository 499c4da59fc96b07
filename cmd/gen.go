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
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/blockmesh/InputParameters"
	"github.com/notargets/blockmesh/dict"
)

type GenModel struct {
	DeckFile   string
	OutputFile string
	Verbose    bool
}

// GenCmd represents the gen command
var GenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a blockMeshDict from a YAML mesh definition deck",
	Long: `Generate a blockMeshDict from a YAML mesh definition deck,

blockmesh gen -d mesh.yaml -o system/blockMeshDict`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		gm := &GenModel{}
		if gm.DeckFile, err = cmd.Flags().GetString("deck"); err != nil {
			panic(err)
		}
		gm.OutputFile, _ = cmd.Flags().GetString("output")
		gm.Verbose, _ = cmd.Flags().GetBool("verbose")
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		if len(gm.DeckFile) == 0 {
			fmt.Printf("error: must supply a mesh definition deck (-d, --deck) in YAML format\n")
			exampleFile := `
########################################
Title: "Unit cavity"
DefaultCells: [10, 10, 10]
Vertices:
  - [0, 0, 0]
  - [1, 0, 0]
  - [1, 1, 0]
  - [0, 1, 0]
  - [0, 0, 1]
  - [1, 0, 1]
  - [1, 1, 1]
  - [0, 1, 1]
Blocks:
  - Name: cavity
    Vertices: [0, 1, 2, 3, 4, 5, 6, 7]
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		if err = RunGen(gm); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(GenCmd)
	GenCmd.Flags().StringP("deck", "d", "", "YAML mesh definition deck to read")
	GenCmd.Flags().StringP("output", "o", "", "output file for the blockMeshDict, stdout when empty")
	GenCmd.Flags().BoolP("verbose", "v", false, "print the parsed deck and mesh statistics")
	GenCmd.Flags().Bool("profile", false, "write a CPU profile of the generation run")
}

// RunGen reads the deck, builds the mesh and writes the assembled
// blockMeshDict to the output file, or stdout when none is given.
func RunGen(gm *GenModel) error {
	data, err := ioutil.ReadFile(gm.DeckFile)
	if err != nil {
		return err
	}
	mp := &InputParameters.MeshParameters{}
	if err = mp.Parse(data); err != nil {
		return err
	}
	if gm.Verbose {
		mp.Print()
	}
	m, err := mp.BuildMesh()
	if err != nil {
		return err
	}

	doc := dict.NewDocument()
	doc.ConvertToMeters = mp.ConvertToMeters
	doc.Geometry = mp.Geometry
	doc.Edges = mp.Edges
	doc.Boundary = mp.Boundary
	doc.MergePatchPairs = mp.MergePatchPairs

	var w io.Writer = os.Stdout
	if len(gm.OutputFile) != 0 {
		f, err := os.Create(gm.OutputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err = doc.Write(w, m); err != nil {
		return err
	}
	if gm.Verbose {
		m.PrintStatistics(os.Stderr)
	}
	return nil
}
