package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leadline-crm/leadline/internal/cli"
	"github.com/leadline-crm/leadline/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage reference data",
		Long:  `Manage the branches, courses, employees, and lead sources leads are classified by.`,
	}

	cmd.AddCommand(settingsBranchesCmd())
	cmd.AddCommand(settingsCoursesCmd())
	cmd.AddCommand(settingsEmployeesCmd())
	cmd.AddCommand(settingsSourcesCmd())

	return cmd
}

func settingsBranchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branches",
		Short: "Manage branches",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List branches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			branches, err := client.Branches(cmd.Context())
			if err != nil {
				return err
			}
			printNamedTable("BRANCH", len(branches), func(i int) (string, string) {
				return branches[i].ID, branches[i].Name
			})
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			created, err := client.CreateBranch(cmd.Context(), model.Branch{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added branch %s", created.Name)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a branch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			updated, err := client.UpdateBranch(cmd.Context(), model.Branch{ID: args[0], Name: args[1]})
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Renamed branch to %s", updated.Name)))
			return nil
		},
	})

	cmd.AddCommand(settingsDeleteCmd("branch", func(cmd *cobra.Command, id string) error {
		client, _, err := newClient(true)
		if err != nil {
			return err
		}
		return client.DeleteBranch(cmd.Context(), id)
	}))

	return cmd
}

func settingsCoursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Manage courses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			courses, err := client.Courses(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCOURSE\tSPECIALIZATIONS")
			for _, c := range courses {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, strings.Join(c.Specializations, ", "))
			}
			_ = w.Flush()
			return nil
		},
	})

	addCourse := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			specs, _ := cmd.Flags().GetStringSlice("specialization")
			created, err := client.CreateCourse(cmd.Context(), model.Course{
				Name:            args[0],
				Specializations: specs,
			})
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added course %s", created.Name)))
			return nil
		},
	}
	addCourse.Flags().StringSlice("specialization", nil, "specialization (repeatable)")
	cmd.AddCommand(addCourse)

	cmd.AddCommand(settingsDeleteCmd("course", func(cmd *cobra.Command, id string) error {
		client, _, err := newClient(true)
		if err != nil {
			return err
		}
		return client.DeleteCourse(cmd.Context(), id)
	}))

	return cmd
}

func settingsEmployeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage employees",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			employees, err := client.Employees(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
			for _, e := range employees {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Email, e.Role)
			}
			_ = w.Flush()
			return nil
		},
	})

	addEmployee := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			roleFlag, _ := cmd.Flags().GetString("role")
			role, err := model.ParseRole(roleFlag)
			if err != nil {
				return err
			}

			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			created, err := client.CreateEmployee(cmd.Context(), model.Employee{
				Name:  args[0],
				Email: email,
				Role:  role,
			})
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added employee %s (%s)", created.Name, created.Role)))
			return nil
		},
	}
	addEmployee.Flags().String("email", "", "employee email")
	addEmployee.Flags().String("role", string(model.RoleEmployee), "role (Employee, Manager, Admin)")
	cmd.AddCommand(addEmployee)

	cmd.AddCommand(settingsDeleteCmd("employee", func(cmd *cobra.Command, id string) error {
		client, _, err := newClient(true)
		if err != nil {
			return err
		}
		return client.DeleteEmployee(cmd.Context(), id)
	}))

	return cmd
}

func settingsSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage lead sources",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List lead sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			sources, err := client.Sources(cmd.Context())
			if err != nil {
				return err
			}
			printNamedTable("SOURCE", len(sources), func(i int) (string, string) {
				return sources[i].ID, sources[i].Name
			})
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a lead source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			created, err := client.CreateSource(cmd.Context(), model.LeadSource{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added source %s", created.Name)))
			return nil
		},
	})

	cmd.AddCommand(settingsDeleteCmd("source", func(cmd *cobra.Command, id string) error {
		client, _, err := newClient(true)
		if err != nil {
			return err
		}
		return client.DeleteSource(cmd.Context(), id)
	}))

	return cmd
}

// settingsDeleteCmd builds the shared delete subcommand with a
// confirmation prompt.
func settingsDeleteCmd(noun string, del func(*cobra.Command, string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if skip, _ := cmd.Flags().GetBool("yes"); !skip {
				ok, err := cli.Confirm(os.Stdin, os.Stdout, fmt.Sprintf("Delete this %s?", noun))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Aborted."))
					return nil
				}
			}
			if err := del(cmd, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %s", noun)))
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	return cmd
}

func printNamedTable(header string, count int, row func(int) (string, string)) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", header)
	for i := 0; i < count; i++ {
		id, name := row(i)
		fmt.Fprintf(w, "%s\t%s\n", id, name)
	}
	_ = w.Flush()
}
