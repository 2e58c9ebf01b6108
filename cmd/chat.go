package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/rgarhwal/intern-advisor/internal/engine"
	"github.com/rgarhwal/intern-advisor/internal/history"
	"github.com/rgarhwal/intern-advisor/internal/logger"
	"github.com/rgarhwal/intern-advisor/internal/match"
	"github.com/rgarhwal/intern-advisor/internal/model"
	"github.com/rgarhwal/intern-advisor/internal/profile"
	"github.com/rgarhwal/intern-advisor/internal/rank"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptAsk             = "Ask a question"
	PromptRecommendations = "Show my recommendations"
	PromptExit            = "Exit"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the internship assistant from the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		chat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("name", "", "your name, used to personalize replies")
	chatCmd.Flags().String("skills", "", "comma-separated skills for recommendations")
	chatCmd.Flags().String("interest", "", "preferred area of interest")
}

func chat(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	prof := profileFromFlags(cmd)

	handle := model.New(config.Model, logger)
	eng := engine.New(handle, rank.New(match.New()), config.Engine, logger)

	sessionID := uuid.NewString()
	var turns history.Turns

	logger.Info("chat session started", zap.String("session", sessionID))

	menu := promptui.Select{
		Label: "What would you like to do?",
		Items: []string{PromptAsk, PromptRecommendations, PromptExit},
	}

	for {
		_, action, err := menu.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		switch action {
		case PromptAsk:
			turns = ask(ctx, eng, prof, turns)
		case PromptRecommendations:
			showRecommendations(ctx, eng, prof)
		case PromptExit:
			return
		}
	}
}

func ask(ctx context.Context, eng *engine.Engine, prof *profile.Profile, turns history.Turns) history.Turns {
	input := promptui.Prompt{Label: "You"}

	message, err := input.Run()
	if err != nil {
		return turns
	}

	reply, err := eng.GetChatReply(ctx, message, prof, turns)
	switch {
	case errors.Is(err, engine.ErrEmptyMessage):
		fmt.Println("Please type a question.")
		return turns
	case errors.Is(err, engine.ErrMessageTooLong):
		fmt.Printf("Please keep questions under %d characters.\n", engine.MaxMessageLen)
		return turns
	case err != nil:
		fmt.Println("Something went wrong, please try again.")
		return turns
	}

	fmt.Printf("\n%s\n\n", reply.Reply)
	return reply.History
}

func showRecommendations(ctx context.Context, eng *engine.Engine, prof *profile.Profile) {
	recs := eng.GetRankedCandidates(ctx, prof)

	fmt.Println()
	for i, candidate := range recs.Candidates {
		fmt.Printf("%d. %s - %s [%s]\n   score %.1f / %s / %s\n",
			i+1, candidate.Company, candidate.Title, candidate.Category,
			candidate.MatchScore, candidate.Duration, candidate.Stipend,
		)
	}
	fmt.Println()
}

func profileFromFlags(cmd *cobra.Command) *profile.Profile {
	name, _ := cmd.Flags().GetString("name")
	skills, _ := cmd.Flags().GetString("skills")
	interest, _ := cmd.Flags().GetString("interest")

	prof := &profile.Profile{
		FullName:       strings.TrimSpace(name),
		AreaOfInterest: strings.TrimSpace(interest),
	}
	for _, skill := range strings.Split(skills, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			prof.Skills = append(prof.Skills, skill)
		}
	}
	return prof
}
