package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanshika/insuradmin/internal/domain"
	"github.com/vanshika/insuradmin/internal/report"
)

// reportFlags selects at most one filter dimension.
type reportFlags struct {
	policyholder string
	product      string
	payment      string
	status       string
}

func (f reportFlags) filter() (report.Filter, error) {
	var filters []report.Filter
	if f.policyholder != "" {
		filters = append(filters, report.FieldEquals(domain.FieldPolicyholderID, f.policyholder))
	}
	if f.product != "" {
		filters = append(filters, report.FieldEquals(domain.FieldProductID, f.product))
	}
	if f.payment != "" {
		filters = append(filters, report.FieldEquals(domain.FieldPaymentID, f.payment))
	}
	if f.status != "" {
		switch domain.Status(f.status) {
		case domain.StatusPaid, domain.StatusPending:
		default:
			return report.Filter{}, fmt.Errorf("invalid --status %q: must be paid or pending", f.status)
		}
		filters = append(filters, report.FieldEquals(domain.FieldPaymentStatus, f.status))
	}

	switch len(filters) {
	case 0:
		return report.Filter{}, nil
	case 1:
		return filters[0], nil
	default:
		return report.Filter{}, errors.New("only one of --policyholder, --product, --payment or --status may be set")
	}
}

func (a *app) linkedRecords() ([]domain.LinkedRecord, error) {
	ws, err := a.workspace()
	if err != nil {
		return nil, err
	}
	snap := ws.Snapshot()
	if dropped := report.Unlinked(snap.Policyholders, snap.Products, snap.Payments); len(dropped) > 0 {
		a.logger.Debug("payments left out of report", "count", len(dropped))
	}
	return report.Join(snap.Policyholders, snap.Products, snap.Payments), nil
}

func newReportCmd(a *app) *cobra.Command {
	var (
		flags reportFlags
		save  bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the joined policyholder report",
		Long: `Join payments with their policyholders and products and print one block per
payment. Payments whose policyholder or product is missing are left out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := flags.filter()
			if err != nil {
				return err
			}
			records, err := a.linkedRecords()
			if err != nil {
				return err
			}
			text, err := report.Render(records, f)
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching records found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), text)

			if !save {
				return nil
			}
			path := a.cfg.Storage.ReportPath()
			if err := report.Save(path, text); err != nil {
				return fmt.Errorf("save report: %w", err)
			}
			a.logger.Info("report saved", "path", path)
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.policyholder, "policyholder", "", "only payments of this policyholder id")
	pf.StringVar(&flags.product, "product", "", "only payments for this product id")
	pf.StringVar(&flags.payment, "payment", "", "only this payment id")
	pf.StringVar(&flags.status, "status", "", "only payments in this status (paid|pending)")
	cmd.Flags().BoolVar(&save, "save", false, "also overwrite the report file with the output")

	cmd.AddCommand(newExportCmd(a, &flags))
	return cmd
}

func newExportCmd(a *app, flags *reportFlags) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the joined records as json, yaml or csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmtType, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			f, err := flags.filter()
			if err != nil {
				return err
			}
			records, err := a.linkedRecords()
			if err != nil {
				return err
			}
			kept, err := f.Apply(records)
			if err != nil {
				return err
			}

			if output != "" {
				err = exportFile(output, kept, fmtType)
			} else {
				err = report.Export(cmd.OutOrStdout(), kept, fmtType)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("report exported", "format", fmtType, "records", len(kept))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(report.FormatJSON), "output format: json, yaml or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

// exportFile writes records to path. A failed close is reported like a failed write.
func exportFile(path string, records []domain.LinkedRecord, format report.Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return report.Export(file, records, format)
}
