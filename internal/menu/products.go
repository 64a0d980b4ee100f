package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vanshika/insuradmin/internal/domain"
	"github.com/vanshika/insuradmin/internal/service"
)

// RunProducts runs the product menu until Q or end of input.
func (p *Portal) RunProducts() error {
	c := p.console
	svc := p.ws.Products
	for {
		c.Println("\n--- Product Management Module ---")
		c.Println("C - Create a new product")
		c.Println("U - Update a product")
		c.Println("P - Suspend a product")
		c.Println("A - Reactivate a product")
		c.Println("D - Display all products")
		c.Println("F - Find a product")
		c.Println("S - Save product data")
		c.Println("Q - Quit")
		choice, ok := c.Choice("Enter your choice (C/U/P/A/D/F/S/Q): ")
		if !ok {
			return nil
		}

		switch choice {
		case "C":
			p.createProduct()
		case "U":
			p.updateProduct()
		case "P":
			p.transitionProduct("suspend", svc.Suspend, "has been suspended", "is already suspended")
		case "A":
			p.transitionProduct("reactivate", svc.Reactivate, "has been reactivated", "is already active")
		case "D":
			p.displayProducts()
		case "F":
			p.searchProducts()
		case "S":
			if err := svc.Save(); err != nil {
				return fmt.Errorf("save products: %w", err)
			}
			c.Printf("Product data saved to '%s'.\n", svc.Path())
		case "Q":
			return nil
		default:
			c.Println("Invalid choice. Please try again.")
		}
	}
}

func (p *Portal) createProduct() {
	c := p.console
	c.Println("\nCreate a New Product")
	id, ok := c.Ask("Enter Product ID (leave blank to generate): ")
	if !ok {
		return
	}
	name, ok := c.Ask("Enter Product Name: ")
	if !ok {
		return
	}
	rawPrice, ok := c.Ask("Enter Product Price: ")
	if !ok {
		return
	}
	price, err := service.ParseAmount(rawPrice)
	if err != nil {
		c.Println("Invalid price. Please enter a valid number.")
		return
	}

	product, err := p.ws.Products.Create(service.ProductInput{ID: id, Name: name, Price: price})
	if errors.Is(err, service.ErrDuplicateID) {
		c.Printf("Product ID %s already exists.\n", strings.TrimSpace(id))
		return
	}
	if err != nil {
		c.Printf("Product not created: %v\n", err)
		return
	}
	c.Printf("Product %s (ID: %s) has been created.\n", product.Name, product.ID)
}

func (p *Portal) updateProduct() {
	c := p.console
	svc := p.ws.Products
	id, ok := c.Ask("Enter Product ID to update: ")
	if !ok {
		return
	}
	product, err := svc.Find(id)
	if err != nil {
		c.Println("Product not found.")
		return
	}

	for {
		c.Println("\nWhat would you like to update?")
		c.Println("1. Name")
		c.Println("2. Price")
		c.Println("3. Exit Update Menu")
		choice, ok := c.Choice("Enter your choice (1/2/3): ")
		if !ok || choice == "3" {
			return
		}

		switch choice {
		case "1":
			name, ok := c.Ask("Enter new name: ")
			if !ok {
				return
			}
			if product, err = svc.Update(product.ID, service.ProductUpdate{Name: &name}); err != nil {
				c.Printf("Update failed: %v\n", err)
				return
			}
			c.Printf("Product name updated to: %s\n", product.Name)
		case "2":
			raw, ok := c.Ask("Enter new price: ")
			if !ok {
				return
			}
			price, perr := service.ParseAmount(raw)
			if perr != nil {
				c.Println("Invalid price. Please enter a valid number.")
				break
			}
			if product, err = svc.Update(product.ID, service.ProductUpdate{Price: &price}); err != nil {
				c.Printf("Update failed: %v\n", err)
				return
			}
			c.Printf("Product price updated to: %s\n", domain.FormatMoney(product.Price))
		default:
			c.Println("Invalid choice. Please try again.")
		}
		c.Println(product.Details())
	}
}

func (p *Portal) transitionProduct(verb string, apply func(string) (domain.Product, domain.Outcome, error), done, already string) {
	c := p.console
	id, ok := c.Ask(fmt.Sprintf("Enter Product ID to %s: ", verb))
	if !ok {
		return
	}
	product, outcome, err := apply(id)
	if errors.Is(err, service.ErrNotFound) {
		c.Println("Product not found.")
		return
	}
	if outcome.Changed() {
		c.Printf("Product %s (ID: %s) %s.\n", product.Name, product.ID, done)
		return
	}
	c.Printf("Product %s %s.\n", product.Name, already)
}

func (p *Portal) displayProducts() {
	c := p.console
	products := p.ws.Products.List()
	if len(products) == 0 {
		c.Println("No products found.")
		return
	}
	c.Println("\n--- All Products ---")
	for _, product := range products {
		c.Println(product.Details())
		c.separator()
	}
}

func (p *Portal) searchProducts() {
	c := p.console
	term, ok := c.Ask("Enter Product ID or Name to search: ")
	if !ok {
		return
	}
	matches := p.ws.Products.Search(term)
	if len(matches) == 0 {
		c.Println("No matching product found.")
		return
	}
	for _, product := range matches {
		c.Println(product.Details())
	}
}

// pickProduct lists the catalog and lets the operator choose by number.
func (p *Portal) pickProduct() (domain.Product, bool) {
	c := p.console
	products := p.ws.Products.List()
	if len(products) == 0 {
		c.Println("Error: No products found. Please create products first.")
		return domain.Product{}, false
	}

	c.Println("\nAvailable Products:")
	for i, product := range products {
		c.Printf("%d. ID: %s, Name: %s, Price: %s\n", i+1, product.ID, product.Name, domain.FormatMoney(product.Price))
	}
	raw, ok := c.Ask("Enter the number of the product: ")
	if !ok {
		return domain.Product{}, false
	}
	position, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		c.Println("Invalid input. Please enter a valid number.")
		return domain.Product{}, false
	}
	product, err := p.ws.Products.Select(position)
	if err != nil {
		c.Println("Invalid product selection. Please try again.")
		return domain.Product{}, false
	}
	return product, true
}
