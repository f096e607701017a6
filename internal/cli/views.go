package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	freeconnect "github.com/freeconnect/freeconnect-go"
)

// projectsCommand browses the public project catalog and, for clients, posts
// new projects.
func (a *App) projectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Browse the project catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := a.api.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			printProjects("Projects", projects)
			return nil
		},
	}
	cmd.AddCommand(a.showProjectCommand(), a.postProjectCommand())
	return cmd
}

func (a *App) showProjectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := a.api.Projects.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Println(styleTitle.Render(fmt.Sprintf("#%d %s", p.ID, p.Title)))
			fmt.Printf("budget: %.2f  status: %s  client: %d\n", p.Budget, p.Status, p.ClientID)
			if p.Description != "" {
				fmt.Println(p.Description)
			}
			return nil
		},
	}
}

func (a *App) postProjectCommand() *cobra.Command {
	var input freeconnect.ProjectInput
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new project (clients only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireView("post-project"); err != nil {
				return err
			}
			if user := a.currentUser(); user != nil {
				input.ClientID = user.ID
			}
			project, err := a.api.Projects.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Println(styleTitle.Render("Project posted") + fmt.Sprintf(" #%d %s", project.ID, project.Title))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Title, "title", "", "project title")
	cmd.Flags().StringVar(&input.Description, "description", "", "project description")
	cmd.Flags().Float64Var(&input.Budget, "budget", 0, "project budget")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("budget")
	return cmd
}

// myProjectsCommand is the client's view of their own postings.
func (a *App) myProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "my-projects",
		Short: "List projects you posted (clients only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireView("my-projects"); err != nil {
				return err
			}
			user := a.currentUser()
			projects, err := a.api.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			mine := projects[:0:0]
			for _, p := range projects {
				if user != nil && p.ClientID == user.ID {
					mine = append(mine, p)
				}
			}
			printProjects("My projects", mine)
			return nil
		},
	}
}

// freelancerProjectsCommand is the freelancer's work view: projects assigned
// to them plus the open ones they can bid on.
func (a *App) freelancerProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "freelancer-projects",
		Short: "List open and assigned projects (freelancers only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireView("freelancer-projects"); err != nil {
				return err
			}
			user := a.currentUser()
			projects, err := a.api.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			relevant := projects[:0:0]
			for _, p := range projects {
				assigned := p.FreelancerID != nil && user != nil && *p.FreelancerID == user.ID
				open := p.FreelancerID == nil
				if assigned || open {
					relevant = append(relevant, p)
				}
			}
			printProjects("Available and assigned projects", relevant)
			return nil
		},
	}
}

// proposalsCommand lists a project's proposals and lets freelancers submit
// bids.
func (a *App) proposalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposals <project-id>",
		Short: "List proposals for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireView("proposals"); err != nil {
				return err
			}
			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}
			proposals, err := a.api.Proposals.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			fmt.Println(styleTitle.Render(fmt.Sprintf("Proposals for project #%d", projectID)))
			if len(proposals) == 0 {
				fmt.Println(styleFaint.Render("  none yet"))
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(w, "  ID\tBID\tDURATION\tSTATUS\tTEXT")
			for _, p := range proposals {
				fmt.Fprintf(w, "  %d\t%.2f\t%dd\t%s\t%s\n",
					p.ID, p.BidAmount, p.EstimatedDuration, p.Status, p.ProposalText)
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(a.submitProposalCommand())
	return cmd
}

func (a *App) submitProposalCommand() *cobra.Command {
	var input freeconnect.ProposalInput
	var projectID uint
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a proposal (freelancers only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireView("freelancer-projects"); err != nil {
				return err
			}
			if user := a.currentUser(); user != nil {
				input.FreelancerID = user.ID
			}
			input.ProjectID = projectID
			proposal, err := a.api.Proposals.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Println(styleTitle.Render("Proposal submitted") + fmt.Sprintf(" #%d on project #%d", proposal.ID, proposal.ProjectID))
			return nil
		},
	}
	cmd.Flags().UintVar(&projectID, "project", 0, "project to bid on")
	cmd.Flags().Float64Var(&input.BidAmount, "bid", 0, "bid amount")
	cmd.Flags().IntVar(&input.EstimatedDuration, "duration", 0, "estimated duration in days")
	cmd.Flags().StringVar(&input.ProposalText, "text", "", "proposal text")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("bid")
	return cmd
}

// skillsCommand lists the skill catalog. Public, like the marketplace's
// browse pages.
func (a *App) skillsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List the skill catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := a.api.Skills.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(styleTitle.Render("Skills"))
			if len(skills) == 0 {
				fmt.Println(styleFaint.Render("  none"))
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(w, "  ID\tNAME\tLEVEL")
			for _, s := range skills {
				fmt.Fprintf(w, "  %d\t%s\t%s\n", s.ID, s.Name, s.Level)
			}
			return w.Flush()
		},
	}
}

// notificationsCommand lists the signed-in user's notifications.
func (a *App) notificationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "List your notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireView("profile"); err != nil {
				return err
			}
			user := a.currentUser()
			notifications, err := a.api.Notifications.ListByUser(cmd.Context(), user.ID)
			if err != nil {
				return err
			}
			fmt.Println(styleTitle.Render("Notifications"))
			if len(notifications) == 0 {
				fmt.Println(styleFaint.Render("  none"))
				return nil
			}
			for _, n := range notifications {
				marker := "*"
				if n.ReadStatus {
					marker = " "
				}
				fmt.Printf("  %s #%d %s %s\n", marker, n.ID, n.Date.Format("2006-01-02"), n.Message)
			}
			return nil
		},
	}
}

// adminCommand groups the admin dashboard's actions: review the user roster,
// approve freelancers, and broadcast announcements.
func (a *App) adminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer the marketplace (admins only)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "users",
			Short: "List all users",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.requireView("admin-dashboard"); err != nil {
					return err
				}
				users, err := a.api.Admin.ListUsers(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Println(styleTitle.Render("Users"))
				w := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
				fmt.Fprintln(w, "  ID\tNAME\tEMAIL\tROLE")
				for _, u := range users {
					fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "approve <user-id>",
			Short: "Approve a pending user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.requireView("admin-dashboard"); err != nil {
					return err
				}
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := a.api.Admin.ApproveUser(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Println(styleTitle.Render("Approved") + fmt.Sprintf(" user #%d", id))
				return nil
			},
		},
		&cobra.Command{
			Use:   "broadcast <message>",
			Short: "Send an announcement to all users",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.requireView("admin-dashboard"); err != nil {
					return err
				}
				if err := a.api.Notifications.Broadcast(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Println(styleTitle.Render("Announcement sent"))
				return nil
			},
		},
	)
	return cmd
}

func printProjects(title string, projects []freeconnect.Project) {
	fmt.Println(styleTitle.Render(title))
	if len(projects) == 0 {
		fmt.Println(styleFaint.Render("  none"))
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTITLE\tBUDGET\tSTATUS")
	for _, p := range projects {
		fmt.Fprintf(w, "  %d\t%s\t%.2f\t%s\n", p.ID, p.Title, p.Budget, p.Status)
	}
	w.Flush()
}

func (a *App) currentUser() *freeconnect.User {
	return a.broadcaster.Current().User
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
