package cli

import (
	"context"
	"sort"
	"strconv"
	"strings"
)

func (a *App) Notifications(ctx context.Context, _ []string) error {
	list, err := a.api.Notifications(ctx)
	if err != nil {
		return err
	}
	if list.Count == 0 {
		a.printf("No notifications.\n")
		return nil
	}
	for _, n := range list.Notifications {
		a.printf("%s  [%s] %s: %s\n", n.ID, strings.ToUpper(n.Severity), n.Title, n.Message)
	}
	return nil
}

func (a *App) ReadNotification(ctx context.Context, args []string) error {
	id, err := requireArg(args, 0, "read <notification-id>")
	if err != nil {
		return err
	}
	if err := a.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	a.printf("Marked as read.\n")
	return nil
}

// Requests prints the request counters collected during this run.
func (a *App) Requests(_ context.Context, _ []string) error {
	families, err := a.metrics.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		if mf.GetName() != "makanscan_api_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var method, status string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "method":
					method = l.GetValue()
				case "status":
					status = l.GetValue()
				}
			}
			lines = append(lines, method+" "+status+": "+strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64))
		}
	}

	if len(lines) == 0 {
		a.printf("No requests yet.\n")
		return nil
	}
	sort.Strings(lines)
	for _, l := range lines {
		a.printf("%s\n", l)
	}
	return nil
}
