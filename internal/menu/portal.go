// Package menu implements the line-based text menus of the insurance portal.
package menu

import (
	"io"
	"log/slog"

	"github.com/vanshika/insuradmin/internal/service"
)

// Portal runs the main menu and the per-domain menus in-process over one
// Workspace, so reports always reflect the current in-memory collections.
type Portal struct {
	ws         *service.Workspace
	console    *Console
	reportPath string
	logger     *slog.Logger
}

// NewPortal builds a portal reading from in and writing to out. Rendered reports
// are saved to reportPath on request.
func NewPortal(ws *service.Workspace, reportPath string, in io.Reader, out io.Writer, logger *slog.Logger) *Portal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Portal{
		ws:         ws,
		console:    NewConsole(in, out),
		reportPath: reportPath,
		logger:     logger.With("component", "menu"),
	}
}

// Run loops over the main menu until the operator quits or input ends.
// A returned error is a failed save and should end the process.
func (p *Portal) Run() error {
	c := p.console
	for {
		c.Println("\n--- Insurance Management Portal ---")
		c.Println("P - Policyholder Management")
		c.Println("R - Product Management")
		c.Println("M - Payment Management")
		c.Println("V - Reports")
		c.Println("S - Save all changes")
		c.Println("Q - Quit")
		choice, ok := c.Choice("Enter your choice (P/R/M/V/S/Q): ")
		if !ok {
			p.Farewell()
			return nil
		}

		var err error
		switch choice {
		case "P":
			c.Println("\n--- Policyholder Management ---")
			err = p.RunPolicyholders()
		case "R":
			c.Println("\n--- Product Management ---")
			err = p.RunProducts()
		case "M":
			c.Println("\n--- Payment Management ---")
			err = p.RunPayments()
		case "V":
			err = p.RunReports()
		case "S":
			err = p.saveAll()
		case "Q":
			p.Farewell()
			return nil
		default:
			c.Println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// saveAll writes every collection with unsaved changes.
func (p *Portal) saveAll() error {
	c := p.console
	if !p.ws.Dirty() {
		c.Println("No unsaved changes.")
		return nil
	}
	if err := p.ws.SaveAll(); err != nil {
		return err
	}
	c.Println("All changes saved.")
	return nil
}

// Farewell warns about unsaved collections, which are discarded on exit, and says goodbye.
func (p *Portal) Farewell() {
	c := p.console
	if !p.ws.Dirty() {
		c.Println("Exiting the program. Goodbye!")
		return
	}
	if p.ws.Policyholders.Dirty() {
		c.Println("Unsaved policyholder changes have been discarded.")
	}
	if p.ws.Products.Dirty() {
		c.Println("Unsaved product changes have been discarded.")
	}
	if p.ws.Payments.Dirty() {
		c.Println("Unsaved payment changes have been discarded.")
	}
	c.Println("Exiting the program. Goodbye!")
}
