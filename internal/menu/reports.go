package menu

import (
	"fmt"
	"strings"

	"github.com/vanshika/insuradmin/internal/domain"
	"github.com/vanshika/insuradmin/internal/report"
)

// RunReports runs the reporting menu. Each report joins the collections as
// they are in memory at that moment.
func (p *Portal) RunReports() error {
	c := p.console
	for {
		c.Println("\n--- Reports ---")
		c.Println("1 - View all details")
		c.Println("2 - View details by Policyholder ID")
		c.Println("3 - View details by Product ID")
		c.Println("4 - View details by Payment ID")
		c.Println("5 - View policyholders with payment status and outstanding balance")
		c.Println("6 - Back to Main Menu")
		choice, ok := c.Choice("Enter your choice (1/2/3/4/5/6): ")
		if !ok || choice == "6" {
			return nil
		}

		var err error
		switch choice {
		case "1":
			c.Println("\n--- All Details ---")
			err = p.showReport(p.linkedRecords(), report.Filter{})
		case "2":
			err = p.reportByID("Policyholder", domain.FieldPolicyholderID)
		case "3":
			err = p.reportByID("Product", domain.FieldProductID)
		case "4":
			err = p.reportByID("Payment", domain.FieldPaymentID)
		case "5":
			err = p.runStatusReports()
		default:
			c.Println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (p *Portal) reportByID(entity string, field domain.Field) error {
	c := p.console
	raw, ok := c.Ask(fmt.Sprintf("Enter %s ID: ", entity))
	if !ok {
		return nil
	}
	id := strings.TrimSpace(raw)
	c.Printf("\n--- Details for %s ID: %s ---\n", entity, id)
	return p.showReport(p.linkedRecords(), report.FieldEquals(field, id))
}

func (p *Portal) runStatusReports() error {
	c := p.console
	for {
		c.Println("\n--- Policyholders with Payment Status and Outstanding Balance ---")
		c.Println("1 - All Payments")
		c.Println("2 - Paid Payments")
		c.Println("3 - Pending Payments")
		c.Println("4 - Filter by Product")
		c.Println("5 - Back to Reports Menu")
		choice, ok := c.Choice("Enter your choice (1/2/3/4/5): ")
		if !ok || choice == "5" {
			return nil
		}

		var err error
		switch choice {
		case "1":
			c.Println("\n--- All Payments ---")
			err = p.showReport(p.linkedRecords(), report.Filter{})
		case "2":
			c.Println("\n--- Paid Payments ---")
			err = p.showReport(report.ByPaymentStatus(p.linkedRecords(), domain.StatusPaid), report.Filter{})
		case "3":
			c.Println("\n--- Pending Payments ---")
			err = p.showReport(report.ByPaymentStatus(p.linkedRecords(), domain.StatusPending), report.Filter{})
		case "4":
			product, picked := p.pickProduct()
			if !picked {
				continue
			}
			c.Printf("\n--- Details for Product ID: %s ---\n", product.ID)
			err = p.showReport(report.ByProduct(p.linkedRecords(), product.ID), report.Filter{})
		default:
			c.Println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// linkedRecords joins a fresh snapshot of the workspace.
func (p *Portal) linkedRecords() []domain.LinkedRecord {
	snap := p.ws.Snapshot()
	if dropped := report.Unlinked(snap.Policyholders, snap.Products, snap.Payments); len(dropped) > 0 {
		p.logger.Debug("payments left out of report", "count", len(dropped))
	}
	return report.Join(snap.Policyholders, snap.Products, snap.Payments)
}

// showReport renders records through f, prints the text and offers to save it.
func (p *Portal) showReport(records []domain.LinkedRecord, f report.Filter) error {
	c := p.console
	text, err := report.Render(records, f)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if text == "" {
		c.Println("No matching records found.")
		return nil
	}
	c.Println(text)

	answer, ok := c.Choice("Do you want to save this report to a file? (Y/N): ")
	if !ok {
		return nil
	}
	if answer != "Y" {
		c.Println("Output not saved.")
		return nil
	}
	if err := report.Save(p.reportPath, text); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	p.logger.Info("report saved", "path", p.reportPath)
	c.Printf("Output saved to '%s'.\n", p.reportPath)
	return nil
}
