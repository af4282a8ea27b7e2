package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: smartquitctl login <email>")
	}

	fmt.Fprint(a.out, "Password: ")
	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("error while reading password. Err: %w", err)
	}

	account, err := a.console.Auth.Login(ctx, args[0], strings.TrimSpace(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", account.FullName, account.Role)
	return nil
}

func (a *App) cmdLogout(ctx context.Context) error {
	if err := a.console.Auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) cmdWhoami() error {
	if !a.manager.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	id, _ := a.manager.AccountID()
	fmt.Fprintf(a.out, "Account ID: %d\n", id)
	if account, ok := a.manager.Account(); ok {
		fmt.Fprintf(a.out, "Name: %s\nEmail: %s\nRole: %s\n", account.FullName, account.Email, account.Role)
	}
	return nil
}

func (a *App) cmdList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: smartquitctl list <resource> [--page N] [--size N] [--search TERM]")
	}

	req, err := parsePageFlags(args[1:])
	if err != nil {
		return err
	}

	switch args[0] {
	case "members":
		page, err := a.console.Members.List(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, m := range page.Items {
			rows = append(rows, []string{m.ID.String(), m.FullName, m.Email, m.Status, fmt.Sprint(m.SmokeFreeDays)})
		}
		return a.printPage([]string{"ID", "NAME", "EMAIL", "STATUS", "SMOKE-FREE DAYS"}, rows, page.Page, page.TotalPages, page.TotalElements)

	case "coaches":
		page, err := a.console.Coaches.List(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, c := range page.Items {
			rows = append(rows, []string{c.ID.String(), c.FullName, c.Specialty, fmt.Sprintf("%.1f", c.Rating), fmt.Sprint(c.Active)})
		}
		return a.printPage([]string{"ID", "NAME", "SPECIALTY", "RATING", "ACTIVE"}, rows, page.Page, page.TotalPages, page.TotalElements)

	case "payments":
		page, err := a.console.Payments.List(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, p := range page.Items {
			rows = append(rows, []string{p.ID.String(), p.Amount.StringFixed(2), p.Currency, p.Method, p.Status})
		}
		return a.printPage([]string{"ID", "AMOUNT", "CURRENCY", "METHOD", "STATUS"}, rows, page.Page, page.TotalPages, page.TotalElements)

	case "subscriptions":
		page, err := a.console.Subscriptions.List(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, s := range page.Items {
			rows = append(rows, []string{s.ID.String(), s.PlanName, s.Price.StringFixed(2), s.Status, s.ExpiresAt.Format("2006-01-02")})
		}
		return a.printPage([]string{"ID", "PLAN", "PRICE", "STATUS", "EXPIRES"}, rows, page.Page, page.TotalPages, page.TotalElements)

	case "news":
		page, err := a.console.News.List(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, n := range page.Items {
			rows = append(rows, []string{n.ID.String(), n.Title, n.Author, n.PublishedAt.Format("2006-01-02")})
		}
		return a.printPage([]string{"ID", "TITLE", "AUTHOR", "PUBLISHED"}, rows, page.Page, page.TotalPages, page.TotalElements)

	case "achievements":
		page, err := a.console.Achievements.List(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, ach := range page.Items {
			rows = append(rows, []string{ach.ID.String(), ach.Name, fmt.Sprint(ach.Points), fmt.Sprint(ach.EarnedCount)})
		}
		return a.printPage([]string{"ID", "NAME", "POINTS", "EARNED"}, rows, page.Page, page.TotalPages, page.TotalElements)

	case "slots":
		page, err := a.console.Slots.List(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, s := range page.Items {
			rows = append(rows, []string{s.ID.String(), s.CoachID.String(), s.StartsAt.Format("2006-01-02 15:04"), fmt.Sprint(s.Available)})
		}
		return a.printPage([]string{"ID", "COACH", "STARTS", "AVAILABLE"}, rows, page.Page, page.TotalPages, page.TotalElements)

	case "reminders":
		page, err := a.console.Reminders.List(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, r := range page.Items {
			rows = append(rows, []string{r.ID.String(), r.Message, r.Schedule, fmt.Sprint(r.Enabled)})
		}
		return a.printPage([]string{"ID", "MESSAGE", "SCHEDULE", "ENABLED"}, rows, page.Page, page.TotalPages, page.TotalElements)

	case "appointments":
		page, err := a.console.Appointments.List(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, appt := range page.Items {
			rows = append(rows, []string{appt.ID.String(), appt.MemberID.String(), appt.CoachID.String(), appt.Status})
		}
		return a.printPage([]string{"ID", "MEMBER", "COACH", "STATUS"}, rows, page.Page, page.TotalPages, page.TotalElements)

	case "conversations":
		page, err := a.console.Chat.Conversations(ctx, req)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, conv := range page.Items {
			rows = append(rows, []string{conv.ID.String(), conv.LastMessage, fmt.Sprint(conv.Unread), conv.UpdatedAt.Format("2006-01-02 15:04")})
		}
		return a.printPage([]string{"ID", "LAST MESSAGE", "UNREAD", "UPDATED"}, rows, page.Page, page.TotalPages, page.TotalElements)

	default:
		return fmt.Errorf("unknown resource %q", args[0])
	}
}

func (a *App) cmdWatch(ctx context.Context) error {
	ch, err := a.listener.Listen(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Watching notifications, Ctrl-C to stop")
	for n := range ch {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", n.CreatedAt.Format("15:04:05"), n.Title, n.Body)
	}
	return nil
}

func parsePageFlags(args []string) (api.PageRequest, error) {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)

	page := fs.IntP("page", "p", 0, "Zero-based page index")
	size := fs.IntP("size", "n", 20, "Page size")
	search := fs.StringP("search", "q", "", "Search term")
	sortBy := fs.String("sort-by", "", "Sort field")
	sortDir := fs.String("sort-dir", "", "Sort direction (asc, desc)")

	if err := fs.Parse(args); err != nil {
		return api.PageRequest{}, err
	}

	return api.PageRequest{
		Page:      *page,
		Size:      *size,
		Search:    *search,
		SortField: *sortBy,
		SortDir:   *sortDir,
	}, nil
}

func (a *App) printPage(headers []string, rows [][]string, page int, totalPages int, totalElements int) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nPage %d of %d (%d total)\n", page+1, totalPages, totalElements)
	return nil
}
