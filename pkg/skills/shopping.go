package skills

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ShoppingList keeps an ordered list of products, mutated only through its
// subcommands.
type ShoppingList struct {
	Base
	items []string
	table *Table
}

func NewShoppingList(name, description string) *ShoppingList {
	l := &ShoppingList{Base: NewBase(name, description)}
	l.table = MustTable(
		Subcommand{
			Name:        "insertar",
			Description: "Insertar un producto nuevo",
			Params:      []string{"producto"},
			Handler:     l.insert,
		},
		Subcommand{
			Name:        "borrar",
			Description: "Borrar un producto",
			Params:      []string{"numero"},
			Handler:     l.remove,
		},
		Subcommand{
			Name:        "listar",
			Description: "Mostrar el listado de productos",
			Handler:     l.list,
		},
		Subcommand{
			Name:        "cantidad",
			Description: "Mostrar el número de productos en la lista",
			Handler:     l.count,
		},
	)
	return l
}

func (l *ShoppingList) Subcommands() *Table {
	return l.table
}

func (l *ShoppingList) Help(w io.Writer) {
	WriteCompositeHelp(w, l)
}

// Items returns a copy of the current list.
func (l *ShoppingList) Items() []string {
	return append([]string(nil), l.items...)
}

func (l *ShoppingList) Len() int {
	return len(l.items)
}

func (l *ShoppingList) Insert(product string) {
	l.items = append(l.items, product)
}

// Remove deletes the product at index i, shifting the ones after it.
func (l *ShoppingList) Remove(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("no existe el producto %d (hay %d)", i, len(l.items))
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

func (l *ShoppingList) insert(_ context.Context, args []string) (string, error) {
	l.Insert(args[0])
	return "", nil
}

func (l *ShoppingList) remove(_ context.Context, args []string) (string, error) {
	i, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return "", fmt.Errorf("número no válido: %q", args[0])
	}
	return "", l.Remove(i)
}

func (l *ShoppingList) list(context.Context, []string) (string, error) {
	lines := make([]string, len(l.items))
	for i, p := range l.items {
		lines[i] = fmt.Sprintf("%d: %s", i, p)
	}
	return strings.Join(lines, "\n"), nil
}

func (l *ShoppingList) count(context.Context, []string) (string, error) {
	return strconv.Itoa(len(l.items)), nil
}
