// harmoniactl is a small operator CLI for a running Harmonia API. It drives
// the same typed client the mobile app uses, which makes it handy for
// smoke-testing a deployment end to end.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"harmoniaAPI/apidate"
	"harmoniaAPI/client"
)

type appContext struct {
	ctx    context.Context
	api    *client.Client
	userID int64
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

type loginCmd struct {
	Name  string `arg:"" help:"Display name."`
	Email string `arg:"" help:"Email address; the stable account key."`
}

func (c *loginCmd) Run(app *appContext) error {
	u, err := app.api.Login(app.ctx, c.Name, c.Email)
	if err != nil {
		return err
	}
	return printJSON(u)
}

type dashboardCmd struct {
	Date string `short:"d" help:"Day to show (yyyy-MM-dd). Defaults to today."`
}

func (c *dashboardCmd) Run(app *appContext) error {
	snapshot, err := app.api.Dashboard(app.ctx, app.userID, c.Date)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", snapshot.UserName)
	fmt.Printf("  steps: %d  sleep: %s\n", snapshot.StepCount, snapshot.SleepDurationLabel)
	fmt.Printf("  insight: %s\n", snapshot.DailyInsight)
	for _, h := range snapshot.Habits {
		mark := " "
		if h.IsCompleted {
			mark = "x"
		}
		fmt.Printf("  [%s] %s %s (#%d)\n", mark, h.Icon, h.Name, h.ID)
	}
	return nil
}

type habitToggleCmd struct {
	ID   int64  `arg:"" help:"Habit id."`
	Date string `short:"d" help:"Day to toggle (yyyy-MM-dd). Defaults to today."`
}

func (c *habitToggleCmd) Run(app *appContext) error {
	if err := app.api.ToggleHabit(app.ctx, c.ID, c.Date); err != nil {
		return err
	}
	fmt.Println("toggled")
	return nil
}

type habitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
	Icon string `short:"i" help:"Emoji or icon name." default:"✅"`
}

func (c *habitAddCmd) Run(app *appContext) error {
	h, err := app.api.AddHabit(app.ctx, app.userID, c.Name, c.Icon)
	if err != nil {
		return err
	}
	return printJSON(h)
}

type habitHistoryCmd struct {
	ID int64 `arg:"" help:"Habit id."`
}

func (c *habitHistoryCmd) Run(app *appContext) error {
	history, err := app.api.HabitHistory(app.ctx, c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("current streak: %d days\n", history.CurrentStreak)
	for _, day := range history.CompletedDates {
		fmt.Println(" ", day)
	}
	return nil
}

type habitSuggestCmd struct {
	Objective string `arg:"" help:"Goal to match starter habits against."`
}

func (c *habitSuggestCmd) Run(app *appContext) error {
	suggestions, err := app.api.SuggestHabits(app.ctx, c.Objective)
	if err != nil {
		return err
	}
	return printJSON(suggestions)
}

type waterAddCmd struct {
	Amount int `arg:"" help:"Amount in milliliters."`
}

func (c *waterAddCmd) Run(app *appContext) error {
	log, err := app.api.AddWater(app.ctx, app.userID, c.Amount)
	if err != nil {
		return err
	}
	return printJSON(log)
}

type waterListCmd struct {
	Date string `short:"d" help:"Day to list (yyyy-MM-dd). Defaults to today."`
}

func (c *waterListCmd) Run(app *appContext) error {
	logs, err := app.api.WaterLogs(app.ctx, app.userID, c.Date)
	if err != nil {
		return err
	}
	total := 0
	for _, log := range logs {
		total += log.AmountMl
		fmt.Printf("  #%d  %d ml\n", log.ID, log.AmountMl)
	}
	fmt.Printf("total: %d ml\n", total)
	return nil
}

type waterRmCmd struct {
	ID int64 `arg:"" help:"Water log id."`
}

func (c *waterRmCmd) Run(app *appContext) error {
	if err := app.api.DeleteWaterLog(app.ctx, c.ID); err != nil {
		return err
	}
	fmt.Println("deleted")
	return nil
}

type sleepAddCmd struct {
	Start   string `arg:"" help:"Sleep start, RFC 3339 or yyyy-MM-ddTHH:mm:ss."`
	End     string `arg:"" help:"Sleep end, same formats."`
	Quality string `short:"q" help:"Quality (poor|ok|good)."`
}

func (c *sleepAddCmd) Run(app *appContext) error {
	start, err := apidate.ParseTimestamp(c.Start)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	end, err := apidate.ParseTimestamp(c.End)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}

	log := client.SleepLog{StartTime: apidate.New(start), EndTime: apidate.New(end)}
	if c.Quality != "" {
		q := client.SleepQuality(c.Quality)
		log.Quality = &q
	}

	created, err := app.api.AddSleep(app.ctx, app.userID, log)
	if err != nil {
		return err
	}
	return printJSON(created)
}

type sleepListCmd struct {
	Limit int `short:"n" help:"Max rows to return." default:"10"`
}

func (c *sleepListCmd) Run(app *appContext) error {
	logs, err := app.api.SleepLogs(app.ctx, app.userID, c.Limit)
	if err != nil {
		return err
	}
	for _, log := range logs {
		quality := "-"
		if log.Quality != nil {
			quality = string(*log.Quality)
		}
		fmt.Printf("  #%d  %dmin  quality=%s\n", log.ID, log.DurationMinutes, quality)
	}
	return nil
}

type activityAddCmd struct {
	Type     string  `arg:"" help:"Activity type (running|walking|cycling|strength_training)."`
	Duration float64 `arg:"" help:"Duration in seconds."`
	Distance float64 `short:"k" help:"Distance in kilometers."`
}

func (c *activityAddCmd) Run(app *appContext) error {
	activity := client.Activity{
		Type:            client.ActivityType(c.Type),
		DurationSeconds: c.Duration,
		Date:            apidate.New(time.Now()),
	}
	if c.Distance > 0 {
		activity.DistanceKm = &c.Distance
	}

	if err := app.api.CreateActivity(app.ctx, app.userID, activity); err != nil {
		return err
	}
	fmt.Println("logged")
	return nil
}

type activityListCmd struct{}

func (c *activityListCmd) Run(app *appContext) error {
	activities, err := app.api.Activities(app.ctx, app.userID)
	if err != nil {
		return err
	}
	return printJSON(activities)
}

type journalAddCmd struct {
	Mood    string `arg:"" help:"Mood (happy|good|neutral|bad|sad)."`
	Content string `arg:"" optional:"" help:"Entry text."`
}

func (c *journalAddCmd) Run(app *appContext) error {
	entry, err := app.api.SaveJournalEntry(app.ctx, app.userID, client.Mood(c.Mood), c.Content, apidate.New(time.Now()))
	if err != nil {
		return err
	}
	return printJSON(entry)
}

type journalListCmd struct{}

func (c *journalListCmd) Run(app *appContext) error {
	entries, err := app.api.JournalEntries(app.ctx, app.userID)
	if err != nil {
		return err
	}
	return printJSON(entries)
}

type coachAskCmd struct {
	Message string `arg:"" help:"Question for the coach."`
}

func (c *coachAskCmd) Run(app *appContext) error {
	answer, err := app.api.AskCoach(app.ctx, app.userID, c.Message, nil)
	if err != nil {
		if detail, ok := client.ErrorDetail(err); ok {
			return fmt.Errorf("coach declined: %s", detail)
		}
		return err
	}
	fmt.Println(answer)
	return nil
}

type analyzeCmd struct {
	Photo string `arg:"" type:"path" help:"Path to a JPEG or PNG meal photo."`
	Save  bool   `help:"Persist the analysis as today's nutrition log."`
}

func (c *analyzeCmd) Run(app *appContext) error {
	data, err := os.ReadFile(c.Photo)
	if err != nil {
		return err
	}

	analysis, err := app.api.AnalyzeMeal(app.ctx, filepath.Base(c.Photo), data)
	if err != nil {
		return err
	}
	if err := printJSON(analysis); err != nil {
		return err
	}

	if !c.Save {
		return nil
	}

	log := client.NutritionLogCreate{
		UserID:        app.userID,
		LogDate:       apidate.New(time.Now()),
		TotalCalories: analysis.TotalCalories,
		Insights:      analysis.Insights,
		Items:         analysis.Foods,
	}
	for _, item := range analysis.Foods {
		log.TotalProtein += item.Protein
		log.TotalCarbs += item.Carbs
		log.TotalFat += item.Fat
	}
	if err := app.api.SaveNutritionLog(app.ctx, log); err != nil {
		return err
	}
	fmt.Println("saved")
	return nil
}

var CLI struct {
	Server string `help:"Base URL of the API." default:"http://localhost:8080" env:"HARMONIA_SERVER"`
	User   int64  `help:"User id for user-scoped commands." env:"HARMONIA_USER"`

	Login     loginCmd     `cmd:"" help:"Sign in (creates the account on first use)."`
	Dashboard dashboardCmd `cmd:"" help:"Show the daily dashboard."`
	Habit     struct {
		Toggle  habitToggleCmd  `cmd:"" help:"Toggle a habit's completion for a day."`
		Add     habitAddCmd     `cmd:"" help:"Create a habit."`
		History habitHistoryCmd `cmd:"" help:"Show streak and completed days."`
		Suggest habitSuggestCmd `cmd:"" help:"Suggest starter habits for a goal."`
	} `cmd:"" help:"Manage habits."`
	Water struct {
		Add  waterAddCmd  `cmd:"" help:"Log a drink."`
		List waterListCmd `cmd:"" help:"List one day's drinks."`
		Rm   waterRmCmd   `cmd:"" help:"Delete a water log."`
	} `cmd:"" help:"Track water intake."`
	Sleep struct {
		Add  sleepAddCmd  `cmd:"" help:"Log a night's sleep."`
		List sleepListCmd `cmd:"" help:"List recent sleep logs."`
	} `cmd:"" help:"Track sleep."`
	Activity struct {
		Add  activityAddCmd  `cmd:"" help:"Log an activity."`
		List activityListCmd `cmd:"" help:"List activities."`
	} `cmd:"" help:"Track activities."`
	Journal struct {
		Add  journalAddCmd  `cmd:"" help:"Save today's journal entry."`
		List journalListCmd `cmd:"" help:"List journal entries."`
	} `cmd:"" help:"Keep a journal."`
	Coach   coachAskCmd `cmd:"" name:"coach" help:"Ask the wellness coach."`
	Analyze analyzeCmd  `cmd:"" help:"Analyze a meal photo."`
}

func main() {
	parsed := kong.Parse(&CLI,
		kong.Name("harmoniactl"),
		kong.Description("Command-line companion for the Harmonia wellness API"),
		kong.UsageOnError(),
	)

	api, err := client.New(CLI.Server)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := &appContext{
		ctx:    context.Background(),
		api:    api,
		userID: CLI.User,
	}

	if err := parsed.Run(app); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
