package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/jivana-app/jivana/internal/cli"
	"github.com/jivana-app/jivana/internal/cli/digestcmd"
	"github.com/jivana-app/jivana/internal/cli/habits"
	"github.com/jivana-app/jivana/internal/cli/jobs"
	"github.com/jivana-app/jivana/internal/cli/lifestyle"
	"github.com/jivana-app/jivana/internal/cli/notes"
	"github.com/jivana-app/jivana/internal/cli/pages"
	"github.com/jivana-app/jivana/internal/cli/settings"
	"github.com/jivana-app/jivana/internal/cli/system"
	"github.com/jivana-app/jivana/internal/cli/tasks"
	"github.com/jivana-app/jivana/internal/cli/walletcmd"
	"github.com/jivana-app/jivana/internal/cli/words"
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/keyring"
	"github.com/jivana-app/jivana/internal/logger"
	"github.com/jivana-app/jivana/internal/storage"
	"github.com/jivana-app/jivana/internal/storage/remote"
	"github.com/jivana-app/jivana/internal/wallet"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Local mirror path (.json or .db)." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init system.InitCmd `cmd:"" help:"Initialize jivana storage."`
	Task struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks."`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Mark a task completed."`
		Reopen tasks.TaskReopenCmd `cmd:"" help:"Reopen a completed task."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit a task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Habit struct {
		Add    habits.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   habits.HabitListCmd   `cmd:"" help:"List habits with streaks."`
		Toggle habits.HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
		Delete habits.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Job struct {
		Add    jobs.JobAddCmd    `cmd:"" help:"Add a scheduled job."`
		List   jobs.JobListCmd   `cmd:"" help:"List jobs in schedule order."`
		Delete jobs.JobDeleteCmd `cmd:"" help:"Delete a job."`
	} `cmd:"" help:"Manage scheduled jobs."`
	Note struct {
		Show notes.NoteShowCmd `cmd:"" help:"Show the notepad." default:"1"`
		Save notes.NoteSaveCmd `cmd:"" help:"Save the notepad."`
	} `cmd:"" help:"Use the notepad."`
	Word struct {
		Add    words.WordAddCmd    `cmd:"" help:"Add a vocabulary word."`
		List   words.WordListCmd   `cmd:"" help:"List your words."`
		Delete words.WordDeleteCmd `cmd:"" help:"Delete a word."`
		Daily  words.WordDailyCmd  `cmd:"" help:"Show today's word."`
	} `cmd:"" help:"Build vocabulary."`
	Lifestyle struct {
		Add    lifestyle.LifestyleAddCmd    `cmd:"" help:"Add a lifestyle practice."`
		List   lifestyle.LifestyleListCmd   `cmd:"" help:"List your practices."`
		Delete lifestyle.LifestyleDeleteCmd `cmd:"" help:"Delete a practice."`
		Tips   lifestyle.LifestyleTipsCmd   `cmd:"" help:"Browse lifestyle tips."`
	} `cmd:"" help:"Lifestyle practices and tips."`
	Wisdom pages.WisdomCmd `cmd:"" help:"Show today's wisdom quote."`
	Diet   pages.DietCmd   `cmd:"" help:"Show today's meal plan."`
	Stats  pages.StatsCmd  `cmd:"" help:"Show progress statistics."`
	Wallet struct {
		Connect    walletcmd.WalletConnectCmd    `cmd:"" help:"Connect a wallet address."`
		Status     walletcmd.WalletStatusCmd     `cmd:"" help:"Show connection status." default:"1"`
		Disconnect walletcmd.WalletDisconnectCmd `cmd:"" help:"Disconnect the wallet."`
	} `cmd:"" help:"Manage the wallet identity."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage notification settings."`
	Digest   struct {
		Send  digestcmd.DigestSendCmd  `cmd:"" help:"Build and dispatch the digest once."`
		Serve digestcmd.DigestServeCmd `cmd:"" help:"Run the daily digest scheduler."`
	} `cmd:"" help:"Daily digest."`
	ConfigCmd struct {
		SetConnectionString system.ConfigSetConnectionStringCmd `cmd:"" name:"set-connection-string" help:"Store the remote store connection string in the OS keyring."`
		SetKey              system.ConfigSetKeyCmd              `cmd:"" name:"set-key" help:"Store the content service API key in the OS keyring."`
		Clear               system.ConfigClearCmd               `cmd:"" help:"Remove stored credentials."`
	} `cmd:"" name:"config" help:"Manage credentials."`
}

func main() {
	// A missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Mindful daily companion: tasks, habits, and daily content."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		store = storage.NewSQLiteStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:  store,
		Remote: resolveRemote(),
		Wallet: wallet.NewManager(store),
	}

	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveRemote finds a connection string in the keyring or environment.
// Without one the app runs local-only.
func resolveRemote() *remote.Store {
	connStr, err := keyring.GetConnectionString()
	if err != nil || connStr == "" {
		connStr = os.Getenv("JIVANA_DB_CONNECTION")
	}
	if connStr == "" {
		return nil
	}
	return remote.New(connStr)
}
