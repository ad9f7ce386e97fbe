package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/leadline-crm/leadline/internal/model"
)

// loadLeads fetches the lead collection. On failure after a successful
// initial load the cached snapshot keeps the screen usable; the error
// still surfaces as a notification.
func (m Model) loadLeads(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		leads, err := m.client.Leads(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if m.cache != nil {
				if cached, fetchedAt, cacheErr := m.cache.LoadLeads(ctx); cacheErr == nil {
					slog.Debug("serving stale lead snapshot", "fetched_at", fetchedAt)
					return leadsLoadedMsg{leads: cached, stale: true, err: err}
				}
			}
			return leadsLoadedMsg{err: err}
		}

		if m.cache != nil {
			if cacheErr := m.cache.SaveLeads(ctx, leads); cacheErr != nil {
				slog.Warn("failed to snapshot leads", "error", cacheErr)
			}
		}

		return leadsLoadedMsg{leads: leads}
	}
}

// loadFollowUps fetches the follow-up collection with the same stale
// fallback as loadLeads.
func (m Model) loadFollowUps(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		followUps, err := m.client.FollowUps(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if m.cache != nil {
				if cached, fetchedAt, cacheErr := m.cache.LoadFollowUps(ctx); cacheErr == nil {
					slog.Debug("serving stale follow-up snapshot", "fetched_at", fetchedAt)
					return followUpsLoadedMsg{followUps: cached, stale: true, err: err}
				}
			}
			return followUpsLoadedMsg{err: err}
		}

		if m.cache != nil {
			if cacheErr := m.cache.SaveFollowUps(ctx, followUps); cacheErr != nil {
				slog.Warn("failed to snapshot follow-ups", "error", cacheErr)
			}
		}

		return followUpsLoadedMsg{followUps: followUps}
	}
}

// loadDashboard issues the dashboard's seven reads concurrently and
// joins them all-or-nothing: one failure aborts the batch and nothing
// partial reaches the store.
func (m Model) loadDashboard(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		var msg dashboardLoadedMsg

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.stats, err = m.client.DashboardStats(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.bySource, err = m.client.LeadsBySource(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.byBranch, err = m.client.LeadsByBranch(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.followUpPerf, err = m.client.FollowUpPerformance(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.conversion, err = m.client.ConversionRatio(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.recentLeads, err = m.client.RecentLeads(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.upcoming, err = m.client.UpcomingFollowUps(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return dashboardLoadedMsg{err: err}
		}

		return msg
	}
}

// loadStatistics issues the statistics screen's six reads concurrently,
// all-or-nothing.
func (m Model) loadStatistics(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		var msg statisticsLoadedMsg

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.employees, err = m.client.EmployeePerformance(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.daily, err = m.client.PerformanceSeries(gctx, "daily")
			return err
		})
		g.Go(func() error {
			var err error
			msg.weekly, err = m.client.PerformanceSeries(gctx, "weekly")
			return err
		})
		g.Go(func() error {
			var err error
			msg.monthly, err = m.client.PerformanceSeries(gctx, "monthly")
			return err
		})
		g.Go(func() error {
			var err error
			msg.bySource, err = m.client.SourceWisePerformance(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.byBranch, err = m.client.BranchWisePerformance(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return statisticsLoadedMsg{err: err}
		}

		return msg
	}
}

// loadFormData fetches the reference collections the lead form needs,
// all-or-nothing.
func (m Model) loadFormData(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		var msg formDataLoadedMsg

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.branches, err = m.client.Branches(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.courses, err = m.client.Courses(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.sources, err = m.client.Sources(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.employees, err = m.client.Employees(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return formDataLoadedMsg{err: err}
		}

		return msg
	}
}

// deleteLead removes a lead on the backend. The store is patched only
// after the backend confirms.
func (m Model) deleteLead(ctx context.Context, id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.DeleteLead(ctx, id); err != nil {
			return leadDeletedMsg{id: id, err: err}
		}
		if m.cache != nil {
			if err := m.cache.DeleteLead(ctx, id); err != nil {
				slog.Warn("failed to drop cached lead", "lead_id", id, "error", err)
			}
		}
		return leadDeletedMsg{id: id}
	}
}

// saveLead creates or updates a lead depending on whether it has an id.
func (m Model) saveLead(ctx context.Context, lead model.Lead) tea.Cmd {
	return func() tea.Msg {
		var (
			saved model.Lead
			err   error
		)
		if lead.ID == "" {
			saved, err = m.client.CreateLead(ctx, lead)
		} else {
			saved, err = m.client.UpdateLead(ctx, lead)
		}
		return leadSavedMsg{lead: saved, err: err}
	}
}

// saveFollowUp creates or updates a follow-up.
func (m Model) saveFollowUp(ctx context.Context, fu model.FollowUp) tea.Cmd {
	return func() tea.Msg {
		var (
			saved model.FollowUp
			err   error
		)
		if fu.ID == "" {
			saved, err = m.client.CreateFollowUp(ctx, fu)
		} else {
			saved, err = m.client.UpdateFollowUp(ctx, fu)
		}
		return followUpSavedMsg{followUp: saved, err: err}
	}
}
