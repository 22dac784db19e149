package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config

	// repo is opened by setup and closed by Execute
	repo *config.Repository

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the root cobra command with global flags. The
// configuration and store are set up from the flags when a command runs.
func NewRootCommand() *RootCommand {
	root := &RootCommand{}
	root.build()
	return root
}

// NewRootCommandWithAPI creates a root command over an existing api, skipping
// configuration loading and store setup.
func NewRootCommandWithAPI(apiInstance api.TaskAPI, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(apiInstance, cfg),
		config: cfg,
	}
	if root.config == nil {
		root.config = root.app.config
	}
	root.build()
	return root
}

func (r *RootCommand) build() {
	r.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "A command-line task manager for DSA work",
		Long: `Tasks is a command-line manager for work items tracked across SMS, Outlook,
JIRA, Agile, BOPS and DSA Process work streams.

EXAMPLES:
  tasks add "Prepare sprint tickets" --due 2d -c JIRA -p High
  tasks list                                 # All tasks, soonest due first
  tasks list --status "In Progress" report   # Filter and search
  tasks list --sort priority --order desc
  tasks status 1a2b3c4d done                 # Quick status change
  tasks stats                                # Completion and category counts
  tasks seed                                 # Add example tasks to an empty list
  tasks export --format csv > tasks.csv

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Storage Configuration:
    TASKS_STORAGE_BACKEND                  sqlite, file or memory (default: sqlite)
    TASKS_DATA_DIR                         Data directory (default: ~/.tasks)
    TASKS_DB_FILENAME                      Database filename (default: tasks.db)
    TASKS_STORAGE_KEY                      Key the task list is saved under (default: dsa-tasks)
    TASKS_WRITE_TIMEOUT                    Save timeout (default: 5s)
    TASKS_DIR_PERMISSIONS                  Data directory permissions (default: 0700)
    TASKS_PRESERVE_CORRUPT                 Back up unreadable saved data (default: true)

  Display Configuration:
    TASKS_DATE_FORMAT                      Due date format (default: Jan 2, 2006)
    TASKS_TITLE_WIDTH                      Title column width (default: 40)

  Query Configuration:
    TASKS_DEFAULT_SORT                     dueDate, priority or created (default: dueDate)
    TASKS_DEFAULT_ORDER                    asc or desc (default: asc)

  Validation Configuration:
    TASKS_TITLE_MAX                        Max title length (default: 200)
    TASKS_NOTES_MAX                        Max notes length (default: 2000)

  Application Configuration:
    TASKS_APP_TIMEOUT                      Command timeout (default: 30s)
    TASKS_VERBOSE                          Enable verbose output (default: false)
    TASKS_DEBUG                            Enable debug output

DUE DATES:
  YYYY-MM-DD, today, tomorrow, yesterday, or an offset like 3d, -1d, 2w, 1mo

GETTING HELP:
  tasks [command] --help                   # Get help for any specific command
  tasks completion bash                    # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipSetup(cmd) {
				return nil
			}
			return r.setup(cmd.Context())
		},
	}

	r.addGlobalFlags()
	r.addSubcommands()
}

// SetIO replaces the streams commands read from and write to
func (r *RootCommand) SetIO(in io.Reader, out, errOut io.Writer) {
	r.in, r.out, r.errOut = in, out, errOut
	r.cmd.SetIn(in)
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
	if r.app != nil {
		r.app.SetIO(in, out, errOut)
	}
}

// SetArgs sets the arguments used instead of os.Args[1:]
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if closeErr := r.teardown(); err == nil {
		err = closeErr
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("backend", "", "Storage backend: sqlite, file or memory (overrides TASKS_STORAGE_BACKEND)")
	flags.String("data-dir", "", "Data directory (overrides TASKS_DATA_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TASKS_DB_FILENAME)")
	flags.String("storage-key", "", "Key the task list is saved under (overrides TASKS_STORAGE_KEY)")
	flags.Duration("write-timeout", 0, "Save timeout (overrides TASKS_WRITE_TIMEOUT)")
	flags.Bool("preserve-corrupt", true, "Back up unreadable saved data (overrides TASKS_PRESERVE_CORRUPT)")

	// Display configuration
	flags.String("date-format", "", "Due date format as a Go layout (overrides TASKS_DATE_FORMAT)")
	flags.Int("title-width", 0, "Title column width (overrides TASKS_TITLE_WIDTH)")

	// Query configuration
	flags.String("default-sort", "", "Default sort key (overrides TASKS_DEFAULT_SORT)")
	flags.String("default-order", "", "Default sort order (overrides TASKS_DEFAULT_ORDER)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides TASKS_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TASKS_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	var addOpts AddOptions
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task. Category, priority and status default to SMS, Medium and To Do.

Examples:
  tasks add "Review SMS requirements" --due 2025-07-01
  tasks add Weekly status email --due tomorrow -c Outlook -p Low`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewAddCommand(r.app, addOpts).Execute(ctx, args)
		},
	}
	addCmd.Flags().StringVarP(&addOpts.Due, "due", "d", "", "Due date (required)")
	addCmd.Flags().StringVarP(&addOpts.Category, "category", "c", "", "Category")
	addCmd.Flags().StringVarP(&addOpts.Priority, "priority", "p", "", "Priority: High, Medium or Low")
	addCmd.Flags().StringVarP(&addOpts.Status, "status", "s", "", "Status: To Do, In Progress or Completed")
	addCmd.Flags().StringVarP(&addOpts.Notes, "notes", "n", "", "Free-form notes")

	// List command
	var listOpts ListOptions
	listCmd := &cobra.Command{
		Use:   "list [search text]",
		Short: "List tasks",
		Long: `List tasks with optional filtering and sorting.

Search text matches titles, notes and categories, ignoring case.
Category and status filters accept "All" for no restriction.

Examples:
  tasks list                              # All tasks in the default order
  tasks list -c JIRA                      # Only JIRA tasks
  tasks list --status todo --sort priority
  tasks list --overdue                    # Incomplete tasks past their due date
  tasks list "summary report"             # Search titles and notes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewListCommand(r.app, listOpts).Execute(ctx, args)
		},
	}
	listCmd.Flags().StringVarP(&listOpts.Category, "category", "c", "", "Only tasks in this category")
	listCmd.Flags().StringVarP(&listOpts.Status, "status", "s", "", "Only tasks with this status")
	listCmd.Flags().StringVar(&listOpts.SortBy, "sort", "", "Sort by dueDate, priority or created")
	listCmd.Flags().StringVar(&listOpts.Order, "order", "", "Sort order: asc or desc")
	listCmd.Flags().BoolVar(&listOpts.Overdue, "overdue", false, "Only overdue tasks")

	// Show command
	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a task",
		Long:  "Show every field of a task. The id may be the short id printed by list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewShowCommand(r.app).Execute(ctx, args)
		},
	}

	// Update command
	updateCmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update the given fields of a task. Fields without a flag stay unchanged.

Examples:
  tasks update 1a2b3c4d --due 3d
  tasks update 1a2b3c4d --title "Send Outlook summary" --notes ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewUpdateCommand(r.app, updateOptionsFromFlags(cmd.Flags())).Execute(ctx, args)
		},
	}
	updateCmd.Flags().StringP("title", "t", "", "New title")
	updateCmd.Flags().StringP("due", "d", "", "New due date")
	updateCmd.Flags().StringP("category", "c", "", "New category")
	updateCmd.Flags().StringP("priority", "p", "", "New priority")
	updateCmd.Flags().StringP("status", "s", "", "New status")
	updateCmd.Flags().StringP("notes", "n", "", "New notes")

	// Status command
	statusCmd := &cobra.Command{
		Use:   "status [id] [status]",
		Short: "Change the status of a task",
		Long: `Change the status of a task.

Statuses: To Do (todo), In Progress (in-progress), Completed (done)

Examples:
  tasks status 1a2b3c4d done
  tasks status 1a2b3c4d in progress`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewStatusCommand(r.app).Execute(ctx, args)
		},
	}

	// Delete command
	var deleteYes bool
	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long: `Delete a task. This operation cannot be undone.

You will be asked to confirm unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Confirmation may need longer timeout for user interaction
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout()*2)
			defer cancel()

			return NewDeleteCommand(r.app, deleteYes).Execute(ctx, args)
		},
	}
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking")

	// Stats command
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Long:  "Show counts per status, the completion percentage, overdue tasks and counts per category.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewStatsCommand(r.app).Execute(ctx, args)
		},
	}

	// Seed command
	var seedOpts SeedOptions
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Add example tasks",
		Long: `Add the built-in example tasks, or the tasks of a YAML seed file.

Seed files list tasks with a dueDate (YYYY-MM-DD) or dueInDays offset:

  tasks:
    - title: Prepare JIRA tickets
      category: JIRA
      priority: High
      dueInDays: 1

An export in yaml format is a valid seed file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewSeedCommand(r.app, seedOpts).Execute(ctx, args)
		},
	}
	seedCmd.Flags().StringVarP(&seedOpts.File, "file", "f", "", "YAML seed file")
	seedCmd.Flags().BoolVar(&seedOpts.Force, "force", false, "Add tasks even when the list is not empty")

	// Export command
	var exportFormat string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks",
		Long: `Export all tasks to standard output.

Supported formats:
  json - the saved record layout
  csv  - comma-separated values with a header row
  yaml - a seed file that "tasks seed --file" can load

Example:
  tasks export --format csv > tasks.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewExportCommand(r.app, exportFormat).Execute(ctx, args)
		},
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", FormatJSON, "Output format: json, csv or yaml")

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		showCmd,
		updateCmd,
		statusCmd,
		deleteCmd,
		statsCmd,
		seedCmd,
		exportCmd,
	)
}

// updateOptionsFromFlags keeps only the flags that were given, so an
// explicit empty value still clears a field
func updateOptionsFromFlags(flags *pflag.FlagSet) UpdateOptions {
	changed := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetString(name)
		return &value
	}
	return UpdateOptions{
		Title:    changed("title"),
		Due:      changed("due"),
		Category: changed("category"),
		Priority: changed("priority"),
		Status:   changed("status"),
		Notes:    changed("notes"),
	}
}

// commandContext bounds a command by the application timeout
func (r *RootCommand) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second // Default timeout
}

// setup loads the configuration, opens the store and builds the app.
// It does nothing when an api was injected.
func (r *RootCommand) setup(ctx context.Context) error {
	if r.app != nil {
		return nil
	}

	cfg, err := config.NewLoader().LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg
	if cfg.Application.Verbose {
		logging.SetVerbose(true)
	}

	s, repo, err := OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	r.repo = repo

	r.app = NewApp(api.New(s, cfg), cfg)
	if r.out != nil {
		r.app.SetIO(r.in, r.out, r.errOut)
	}
	return nil
}

func (r *RootCommand) teardown() error {
	if r.repo == nil {
		return nil
	}
	repo := r.repo
	r.repo = nil
	return repo.Close()
}

// overridesFromFlags returns the global flags that were given on the command line
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetString(name)
		return &value
	}
	durationFlag := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetDuration(name)
		return &value
	}
	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetBool(name)
		return &value
	}

	// Storage configuration
	overrides.Backend = stringFlag("backend")
	overrides.DataDir = stringFlag("data-dir")
	overrides.DBFilename = stringFlag("db-filename")
	overrides.StorageKey = stringFlag("storage-key")
	overrides.WriteTimeout = durationFlag("write-timeout")
	overrides.PreserveCorrupt = boolFlag("preserve-corrupt")

	// Display configuration
	overrides.DateFormat = stringFlag("date-format")
	if flags.Changed("title-width") {
		width, _ := flags.GetInt("title-width")
		overrides.TitleWidth = &width
	}

	// Query configuration
	overrides.DefaultSortBy = stringFlag("default-sort")
	overrides.DefaultOrder = stringFlag("default-order")

	// Application configuration
	overrides.Timeout = durationFlag("app-timeout")
	overrides.Verbose = boolFlag("verbose")

	return overrides
}

// skipSetup reports whether cmd runs without a task store, like help and
// shell completion
func skipSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd, "help":
			return true
		}
	}
	return false
}
