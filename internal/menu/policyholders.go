package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vanshika/insuradmin/internal/domain"
	"github.com/vanshika/insuradmin/internal/service"
)

// RunPolicyholders runs the policyholder menu until Q or end of input.
func (p *Portal) RunPolicyholders() error {
	c := p.console
	svc := p.ws.Policyholders
	for {
		c.Println("\n--- Policyholder Management Module ---")
		c.Println("R - Register a new policyholder")
		c.Println("P - Suspend a policyholder")
		c.Println("U - Update policyholder details")
		c.Println("A - Reactivate a policyholder")
		c.Println("D - Display all policyholders")
		c.Println("F - Find a policyholder")
		c.Println("S - Save policyholder data")
		c.Println("Q - Quit")
		choice, ok := c.Choice("Enter your choice (R/P/U/A/D/F/S/Q): ")
		if !ok {
			return nil
		}

		switch choice {
		case "R":
			p.registerPolicyholder()
		case "P":
			p.transitionPolicyholder("suspend", svc.Suspend, "has been suspended", "is already suspended")
		case "U":
			p.updatePolicyholder()
		case "A":
			p.transitionPolicyholder("reactivate", svc.Reactivate, "has been reactivated", "is already active")
		case "D":
			p.displayPolicyholders()
		case "F":
			p.searchPolicyholders()
		case "S":
			if err := svc.Save(); err != nil {
				return fmt.Errorf("save policyholders: %w", err)
			}
			c.Printf("Policyholder data saved to '%s'.\n", svc.Path())
		case "Q":
			return nil
		default:
			c.Println("Invalid choice. Please try again.")
		}
	}
}

func (p *Portal) registerPolicyholder() {
	c := p.console
	c.Println("\nRegister a New Policyholder")
	var in service.PolicyholderInput
	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter Policyholder ID (leave blank to generate): ", &in.ID},
		{"Enter Name: ", &in.Name},
		{"Enter Email: ", &in.Email},
		{"Enter Phone: ", &in.Phone},
	} {
		v, ok := c.Ask(field.prompt)
		if !ok {
			return
		}
		*field.dst = v
	}

	holder, err := p.ws.Policyholders.Register(in)
	if errors.Is(err, service.ErrDuplicateID) {
		c.Printf("Policyholder ID %s already exists.\n", strings.TrimSpace(in.ID))
		return
	}
	if err != nil {
		c.Printf("Policyholder not registered: %v\n", err)
		return
	}
	c.Printf("Policyholder %s (ID: %s) has been registered.\n", holder.Name, holder.ID)
}

// searchPolicyholders shows every match for a free-text term.
func (p *Portal) searchPolicyholders() {
	c := p.console
	term, ok := c.Ask("Enter Policyholder ID, Name, Email, or Phone to search: ")
	if !ok {
		return
	}
	matches := p.ws.Policyholders.Search(term)
	if len(matches) == 0 {
		c.Println("No matching policyholder found.")
		return
	}
	for _, holder := range matches {
		c.Println(holder.Details())
	}
}

func (p *Portal) transitionPolicyholder(verb string, apply func(string) (domain.Policyholder, domain.Outcome, error), done, already string) {
	c := p.console
	p.searchPolicyholders()
	id, ok := c.Ask(fmt.Sprintf("Enter the Policyholder ID to %s: ", verb))
	if !ok {
		return
	}

	holder, outcome, err := apply(id)
	if errors.Is(err, service.ErrNotFound) {
		c.Println("Policyholder not found.")
		return
	}
	if outcome.Changed() {
		c.Printf("Policyholder %s (ID: %s) %s.\n", holder.Name, holder.ID, done)
		return
	}
	c.Printf("Policyholder %s %s.\n", holder.Name, already)
}

func (p *Portal) updatePolicyholder() {
	c := p.console
	svc := p.ws.Policyholders
	p.searchPolicyholders()
	id, ok := c.Ask("Enter the Policyholder ID to update: ")
	if !ok {
		return
	}
	holder, err := svc.Find(id)
	if err != nil {
		c.Println("Policyholder not found.")
		return
	}

	for {
		c.Println("\nWhat would you like to update?")
		c.Println("1. Name")
		c.Println("2. Email")
		c.Println("3. Phone")
		c.Println("4. Exit Update Menu")
		choice, ok := c.Choice("Enter your choice (1/2/3/4): ")
		if !ok || choice == "4" {
			return
		}

		var upd service.PolicyholderUpdate
		var label string
		switch choice {
		case "1":
			label = "name"
			upd.Name = p.askPointer("Enter new name: ")
		case "2":
			label = "email"
			upd.Email = p.askPointer("Enter new email: ")
		case "3":
			label = "phone number"
			upd.Phone = p.askPointer("Enter new phone: ")
		default:
			c.Println("Invalid choice. Please try again.")
		}

		if upd != (service.PolicyholderUpdate{}) {
			holder, err = svc.Update(holder.ID, upd)
			if err != nil {
				c.Printf("Update failed: %v\n", err)
				return
			}
			c.Printf("Policyholder %s updated to: %s\n", label, policyholderField(holder, choice))
		}
		c.Println(holder.Details())
	}
}

func (p *Portal) askPointer(prompt string) *string {
	v, ok := p.console.Ask(prompt)
	if !ok {
		return nil
	}
	return &v
}

func policyholderField(h domain.Policyholder, choice string) string {
	switch choice {
	case "1":
		return h.Name
	case "2":
		return h.Email
	default:
		return h.Phone
	}
}

func (p *Portal) displayPolicyholders() {
	c := p.console
	holders := p.ws.Policyholders.List()
	if len(holders) == 0 {
		c.Println("No policyholders registered.")
		return
	}
	c.Println("\n--- All Policyholders ---")
	for _, holder := range holders {
		c.Println(holder.Details())
		c.separator()
	}
}
