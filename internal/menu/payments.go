package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vanshika/insuradmin/internal/domain"
	"github.com/vanshika/insuradmin/internal/service"
)

// RunPayments runs the payment menu until Q or end of input.
func (p *Portal) RunPayments() error {
	c := p.console
	svc := p.ws.Payments
	for {
		c.Println("\n--- Payment Management Module ---")
		c.Println("C - Create a new payment")
		c.Println("P - Process a payment")
		c.Println("R - Send a payment reminder")
		c.Println("L - Apply a penalty to a payment")
		c.Println("D - Display all payments")
		c.Println("F - Find a payment")
		c.Println("S - Save payment data")
		c.Println("Q - Quit")
		choice, ok := c.Choice("Enter your choice (C/P/R/L/D/F/S/Q): ")
		if !ok {
			return nil
		}

		switch choice {
		case "C":
			p.createPayment()
		case "P":
			p.processPayment()
		case "R":
			p.remindPayment()
		case "L":
			p.penalizePayment()
		case "D":
			p.displayPayments()
		case "F":
			p.searchPayments()
		case "S":
			if err := svc.Save(); err != nil {
				return fmt.Errorf("save payments: %w", err)
			}
			c.Printf("Payment data saved to '%s'.\n", svc.Path())
		case "Q":
			return nil
		default:
			c.Println("Invalid choice. Please try again.")
		}
	}
}

func (p *Portal) createPayment() {
	c := p.console
	c.Println("\nCreate a New Payment")
	id, ok := c.Ask("Enter Payment ID (leave blank to generate): ")
	if !ok {
		return
	}
	holderID, ok := c.Ask("Enter Policyholder ID: ")
	if !ok {
		return
	}
	product, ok := p.pickProduct()
	if !ok {
		return
	}
	rawAmount, ok := c.Ask("Enter Amount: ")
	if !ok {
		return
	}
	amount, err := service.ParseAmount(rawAmount)
	if err != nil {
		c.Println("Invalid input. Please enter a valid number.")
		return
	}
	dueDate, ok := c.Ask("Enter Due Date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	payment, err := p.ws.Payments.Create(service.PaymentInput{
		ID:             id,
		PolicyholderID: holderID,
		ProductID:      product.ID,
		Amount:         amount,
		DueDate:        dueDate,
	})
	if errors.Is(err, service.ErrDuplicateID) {
		c.Printf("Payment ID %s already exists.\n", strings.TrimSpace(id))
		return
	}
	if err != nil {
		c.Printf("Payment not created: %v\n", err)
		return
	}
	c.Printf("Payment %s (Policyholder ID: %s) has been created.\n", payment.ID, payment.PolicyholderID)
}

func (p *Portal) processPayment() {
	c := p.console
	id, ok := c.Ask("Enter Payment ID to process: ")
	if !ok {
		return
	}
	payment, outcome, err := p.ws.Payments.Process(id)
	if errors.Is(err, service.ErrNotFound) {
		c.Println("Payment not found.")
		return
	}
	if outcome.Changed() {
		c.Printf("Payment %s (Policyholder ID: %s) has been processed.\n", payment.ID, payment.PolicyholderID)
		return
	}
	c.Printf("Payment %s is already processed.\n", payment.ID)
}

func (p *Portal) remindPayment() {
	c := p.console
	id, ok := c.Ask("Enter Payment ID to send a reminder: ")
	if !ok {
		return
	}
	text, outcome, err := p.ws.Payments.SendReminder(id)
	if errors.Is(err, service.ErrNotFound) {
		c.Println("Payment not found.")
		return
	}
	if outcome.Changed() {
		c.Println(text)
		return
	}
	c.Printf("No reminder needed. Payment %s is already processed.\n", strings.TrimSpace(id))
}

// penalizePayment parses the penalty before the lookup so malformed input never mutates anything.
func (p *Portal) penalizePayment() {
	c := p.console
	id, ok := c.Ask("Enter Payment ID to apply a penalty: ")
	if !ok {
		return
	}
	raw, ok := c.Ask("Enter Penalty Amount: ")
	if !ok {
		return
	}
	penalty, err := service.ParseAmount(raw)
	if err != nil {
		c.Println("Invalid input. Please enter a valid number.")
		return
	}

	payment, outcome, err := p.ws.Payments.ApplyPenalty(id, penalty)
	if errors.Is(err, service.ErrNotFound) {
		c.Println("Payment not found.")
		return
	}
	if outcome.Changed() {
		c.Printf("Penalty of %s applied to Payment %s. New amount due: %s.\n",
			domain.FormatMoney(penalty), payment.ID, domain.FormatMoney(payment.Amount))
		return
	}
	c.Printf("No penalty applied. Payment %s is already processed.\n", payment.ID)
}

func (p *Portal) displayPayments() {
	c := p.console
	payments := p.ws.Payments.List()
	if len(payments) == 0 {
		c.Println("No payments found.")
		return
	}
	c.Println("\n--- All Payments ---")
	for _, payment := range payments {
		c.Println(payment.Details())
		c.separator()
	}
}

func (p *Portal) searchPayments() {
	c := p.console
	term, ok := c.Ask("Enter Payment ID, Policyholder ID, or Product ID to search: ")
	if !ok {
		return
	}
	matches := p.ws.Payments.Search(term)
	if len(matches) == 0 {
		c.Println("No matching payment found.")
		return
	}
	for _, payment := range matches {
		c.Println(payment.Details())
	}
}
