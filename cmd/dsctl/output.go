package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dsctl/dsctl/types"
)

var outputFormats = []string{"table", "json", "csv"}

func validOutput(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

func printResources(w io.Writer, format string, resources []types.Resource) error {
	switch format {
	case "json":
		return printJSON(w, resources)
	case "csv":
		return printResourcesCSV(w, resources)
	default:
		return printResourcesTable(w, resources)
	}
}

func printResourcesTable(w io.Writer, resources []types.Resource) error {
	if len(resources) == 0 {
		_, err := fmt.Fprintln(w, "no resources found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATE\tTYPE\tOCID")
	for _, r := range resources {
		dbType := r.DatabaseType
		if dbType == "" {
			dbType = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.DisplayName, r.LifecycleState, dbType, r.OCID)
	}
	return tw.Flush()
}

func printResourcesCSV(w io.Writer, resources []types.Resource) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "state", "type", "ocid"}); err != nil {
		return err
	}
	for _, r := range resources {
		record := []string{r.DisplayName, string(r.LifecycleState), r.DatabaseType, r.OCID}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func printCompartments(w io.Writer, format string, compartments []types.Compartment) error {
	switch format {
	case "json":
		return printJSON(w, compartments)
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"name", "state", "ocid"}); err != nil {
			return err
		}
		for _, c := range compartments {
			if err := cw.Write([]string{c.Name, string(c.LifecycleState), c.OCID}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSTATE\tOCID")
		for _, c := range compartments {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.LifecycleState, c.OCID)
		}
		return tw.Flush()
	}
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
