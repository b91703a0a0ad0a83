package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dame620/firstbackjhipstergradle/internal/lib/utils"
	"github.com/dame620/firstbackjhipstergradle/internal/model"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/dame620/firstbackjhipstergradle/internal/service"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// reader is the read side of an entity service.
type reader[T any] interface {
	FindOne(ctx context.Context, id int64) (*T, error)
	Page(ctx context.Context, page query.Page) (*service.Paged[T], error)
	Count(ctx context.Context) (int64, error)
}

type resource[T any] struct {
	name    string
	service func(*service.Services) reader[T]
	header  table.Row
	row     func(*T) table.Row
}

func resourceCommands(a *app) []*cobra.Command {
	return []*cobra.Command{
		newResourceCmd(a, resource[model.User]{
			name:    "user",
			service: func(s *service.Services) reader[model.User] { return s.User },
			header:  table.Row{"ID", "Login", "First name", "Last name", "Email", "Activated"},
			row: func(u *model.User) table.Row {
				return table.Row{cell(u.ID), cell(u.Login), cell(u.FirstName), cell(u.LastName), cell(u.Email), cell(u.Activated)}
			},
		}),
		newResourceCmd(a, resource[model.Bank]{
			name:    "bank",
			service: func(s *service.Services) reader[model.Bank] { return s.Bank },
			header:  table.Row{"ID", "Name", "Address"},
			row: func(b *model.Bank) table.Row {
				return table.Row{cell(b.ID), cell(b.Name), cell(b.Address)}
			},
		}),
		newResourceCmd(a, resource[model.Company]{
			name:    "company",
			service: func(s *service.Services) reader[model.Company] { return s.Company },
			header:  table.Row{"ID", "Name", "NINEA", "RC", "Address"},
			row: func(c *model.Company) table.Row {
				return table.Row{cell(c.ID), cell(c.Name), cell(c.Ninea), cell(c.Rc), cell(c.Address)}
			},
		}),
		newResourceCmd(a, resource[model.Adviser]{
			name:    "adviser",
			service: func(s *service.Services) reader[model.Adviser] { return s.Adviser },
			header:  table.Row{"ID", "Registration", "Company", "Department", "User", "Bank"},
			row: func(ad *model.Adviser) table.Row {
				return table.Row{cell(ad.ID), cell(ad.RegistrationNumber), cell(ad.Company), cell(ad.Department),
					userLogin(ad.User(), ad.UserID), bankName(ad.Bank(), ad.BankID)}
			},
		}),
		newResourceCmd(a, resource[model.Manager]{
			name:    "manager",
			service: func(s *service.Services) reader[model.Manager] { return s.Manager },
			header:  table.Row{"ID", "Registration", "Department", "User", "Company"},
			row: func(m *model.Manager) table.Row {
				company := cell(m.CompanyID)
				if c := m.Company(); c != nil && c.Name != nil {
					company = *c.Name
				}
				return table.Row{cell(m.ID), cell(m.RegistrationNumber), cell(m.Department),
					userLogin(m.User(), m.UserID), company}
			},
		}),
		newResourceCmd(a, resource[model.Appointment]{
			name:    "appointment",
			service: func(s *service.Services) reader[model.Appointment] { return s.Appointment },
			header:  table.Row{"ID", "Reason", "Date", "Held", "Report reason", "Adviser", "Manager"},
			row: func(ap *model.Appointment) table.Row {
				adviser := cell(ap.AdviserID)
				if ad := ap.Adviser(); ad != nil && ad.RegistrationNumber != nil {
					adviser = *ad.RegistrationNumber
				}
				manager := cell(ap.ManagerID)
				if m := ap.Manager(); m != nil && m.RegistrationNumber != nil {
					manager = *m.RegistrationNumber
				}
				return table.Row{cell(ap.ID), cell(ap.Reason), cell(ap.Date), cell(ap.State), cell(ap.ReportReason), adviser, manager}
			},
		}),
	}
}

func newResourceCmd[T any](a *app, r resource[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   r.name,
		Short: fmt.Sprintf("Read %s records", r.name),
	}

	var (
		page   int
		size   int
		sorts  []string
		asJSON bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s records one page at a time", r.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := parseSort(sorts)
			if err != nil {
				return err
			}
			if err := a.connect(cmd); err != nil {
				return err
			}
			p, err := r.service(a.services).Page(cmd.Context(), query.Page{Index: page, Size: size, Sort: order})
			if err != nil {
				return err
			}
			if asJSON {
				return utils.PrintJSON(a.out, p)
			}

			t := newTable(a, r.header)
			for _, e := range p.Items {
				t.AppendRow(r.row(e))
			}
			t.AppendFooter(table.Row{fmt.Sprintf("page %d, %d of %d", p.Page, len(p.Items), p.Total)})
			t.Render()
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 0, "zero-based page index")
	list.Flags().IntVar(&size, "size", 20, "rows per page")
	list.Flags().StringArrayVar(&sorts, "sort", nil, `sort key as "column" or "column,desc"; repeatable`)
	list.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	var getJSON bool
	get := &cobra.Command{
		Use:   "get <id>",
		Short: fmt.Sprintf("Show one %s with its associations", r.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			if err := a.connect(cmd); err != nil {
				return err
			}
			e, err := r.service(a.services).FindOne(cmd.Context(), id)
			if err != nil {
				return err
			}
			if getJSON {
				return utils.PrintJSON(a.out, e)
			}
			t := newTable(a, r.header)
			t.AppendRow(r.row(e))
			t.Render()
			return nil
		},
	}
	get.Flags().BoolVar(&getJSON, "json", false, "print JSON instead of a table")

	count := &cobra.Command{
		Use:   "count",
		Short: fmt.Sprintf("Count %s records", r.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.connect(cmd); err != nil {
				return err
			}
			n, err := r.service(a.services).Count(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, n)
			return err
		},
	}

	cmd.AddCommand(list, get, count)
	return cmd
}

func newTable(a *app, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

// parseSort turns "column" and "column,desc" flags into sort keys.
func parseSort(flags []string) ([]query.Order, error) {
	out := make([]query.Order, 0, len(flags))
	for _, f := range flags {
		column, dir, _ := strings.Cut(f, ",")
		o := query.Order{Column: strings.TrimSpace(column)}
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "", "asc":
		case "desc":
			o.Desc = true
		default:
			return nil, fmt.Errorf("invalid sort direction %q in %q", dir, f)
		}
		if !query.ValidIdentifier(o.Column) {
			return nil, fmt.Errorf("invalid sort column %q", column)
		}
		out = append(out, o)
	}
	return out, nil
}

func cell[T any](p *T) string {
	if p == nil {
		return ""
	}
	switch v := any(*p).(type) {
	case time.Time:
		return v.Format(time.RFC3339)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(v)
	}
}

func userLogin(u *model.User, id *int64) string {
	if u != nil && u.Login != nil {
		return *u.Login
	}
	return cell(id)
}

func bankName(b *model.Bank, id *int64) string {
	if b != nil && b.Name != nil {
		return *b.Name
	}
	return cell(id)
}
