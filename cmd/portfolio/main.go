package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gookit/color"
	"go.uber.org/zap"

	"portfolio-core/pkg/auth"
	"portfolio-core/pkg/config"
	"portfolio-core/pkg/models"
	"portfolio-core/pkg/portfolio"
	"portfolio-core/pkg/storage"
)

func main() {
	cfg := config.New(".env")
	settings := config.Load(cfg)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	bus := storage.NewChangeBus()
	store, err := storage.NewSQLiteStore(settings.DBPath, bus, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	facade := portfolio.New(store, bus, settings, logger, portfolio.DefaultData())
	defer facade.Close()

	color.Cyan.Println("portfolio admin console")
	in := bufio.NewScanner(os.Stdin)

	if facade.Restore() {
		color.Green.Println("session restored")
	} else if !runLogin(facade, in) {
		return
	}

	runConsole(facade, in)
}

func runLogin(facade *portfolio.Facade, in *bufio.Scanner) bool {
	flow := facade.NewLoginFlow()

	for flow.State() != auth.StateAuthenticated {
		switch flow.State() {
		case auth.StateMath:
			color.Yellow.Println("Step 1: Verify Human")
			answer := prompt(in, auth.ChallengeQuestion(flow.Challenge()))
			ok, err := flow.SubmitMath(answer)
			if err != nil {
				color.Red.Println(err.Error())
			} else if !ok {
				color.Red.Println("Incorrect, here is a new one.")
			}
		case auth.StateSecurity:
			color.Yellow.Println("Step 2: Security Check")
			answer := prompt(in, flow.Question().Question)
			if !flow.SubmitSecurity(answer) {
				color.Red.Println("Incorrect answer.")
			}
		case auth.StatePassword:
			color.Yellow.Println("Step 3: Password")
			password := prompt(in, "Admin password:")
			if err := flow.SubmitPassword(password); err != nil {
				color.Red.Println(err.Error())
			}
		}
	}

	color.Green.Println("authenticated")
	return true
}

func runConsole(facade *portfolio.Facade, in *bufio.Scanner) {
	color.Gray.Println("commands: show | add-project | add-skill | sessions | revoke-others | history | passwd | logout | quit")
	for {
		line := prompt(in, ">")
		switch line {
		case "show":
			printSnapshot(facade.Snapshot())
		case "add-project":
			p := models.Project{
				Title:       prompt(in, "title:"),
				Description: prompt(in, "description:"),
				Tags:        strings.Fields(prompt(in, "tags (space separated):")),
			}
			added, err := facade.AddProject(p)
			if err != nil {
				color.Red.Println(err.Error())
				continue
			}
			color.Green.Printf("added %s\n", added.ID)
		case "add-skill":
			s := models.Skill{
				Name:     prompt(in, "name:"),
				Category: prompt(in, "category:"),
				Level:    50,
			}
			added, err := facade.AddSkill(s)
			if err != nil {
				color.Red.Println(err.Error())
				continue
			}
			color.Green.Printf("added %s\n", added.ID)
		case "sessions":
			for _, s := range facade.Sessions() {
				marker := " "
				if s.Current {
					marker = "*"
				}
				fmt.Printf("%s %s  %s  last active %s\n", marker, s.ID, s.ClientDescriptor, s.LastActivity.Format("15:04:05"))
			}
		case "revoke-others":
			if err := facade.RevokeOtherSessions(); err != nil {
				color.Red.Println(err.Error())
				continue
			}
			color.Green.Println("other sessions revoked")
		case "history":
			for _, a := range facade.LoginHistory() {
				outcome := "failed"
				if a.Success {
					outcome = "ok"
				}
				fmt.Printf("%s  %s\n", a.Timestamp.Format("2006-01-02 15:04:05"), outcome)
			}
		case "passwd":
			current := prompt(in, "current password:")
			if !facade.ValidateCurrentPassword(current) {
				color.Red.Println("current password incorrect")
				continue
			}
			if err := facade.UpdatePassword(prompt(in, "new password:")); err != nil {
				color.Red.Println(err.Error())
				continue
			}
			color.Green.Println("password updated")
		case "logout":
			facade.Logout()
			color.Green.Println("logged out")
			return
		case "quit", "exit":
			return
		default:
			color.Gray.Println("unknown command")
		}
	}
}

func printSnapshot(snap portfolio.Snapshot) {
	fmt.Printf("%s | %s\n", snap.PersonalInfo.Name, snap.PersonalInfo.Title)
	fmt.Printf("admin: %v\n", snap.IsAdmin)
	fmt.Printf("projects (%d):\n", len(snap.Projects))
	for _, p := range snap.Projects {
		fmt.Printf("  %s  %s\n", p.ID, p.Title)
	}
	fmt.Printf("skills: %d, experiences: %d, education: %d\n",
		len(snap.Skills), len(snap.Experiences), len(snap.Education))
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label + " ")
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}
