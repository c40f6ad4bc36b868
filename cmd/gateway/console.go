package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"

	"votekick-lab/domain/poll"
	"votekick-lab/repositories"
	"votekick-lab/runtime"
	"votekick-lab/services"
)

// The console acts as the command layer: it hands (serverID, initiatorID,
// rawArgs) to the services as plain strings and displays whatever report
// comes back. The poll core owns no I/O surface of its own.
type console struct {
	serverID  string
	initiator string
	polls     services.IModerationService
	summary   *services.SummaryService
	directory *repositories.MemberDirectory
	board     *repositories.AnnouncementBoard
	registry  *runtime.Registry
	log       *slog.Logger
}

func newConsole(serverID string, polls services.IModerationService,
	summary *services.SummaryService, directory *repositories.MemberDirectory,
	board *repositories.AnnouncementBoard, registry *runtime.Registry,
	log *slog.Logger) *console {
	return &console{
		serverID:  serverID,
		initiator: "u-you",
		polls:     polls,
		summary:   summary,
		directory: directory,
		board:     board,
		registry:  registry,
		log:       log,
	}
}

// loop reads commands from stdin until quit or context cancellation. Stdin is
// pumped through a channel so a signal still interrupts a blocked read.
func (c *console) loop(ctx context.Context) error {
	c.printHelp()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		color.New(color.FgCyan).Printf("> ")

		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if done := c.handle(ctx, strings.TrimSpace(line)); done {
				return nil
			}
		}
	}
}

func (c *console) handle(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		c.printHelp()
	case "summary":
		out, err := c.summary.Render(c.serverID)
		if err != nil {
			color.Red.Printf("summary failed: %v\n", err)
			return false
		}
		fmt.Print(out)
	case "members":
		c.printMembers()
	case "votekick":
		// The poll holds the console for the whole window, so run it in the
		// background and let votes come in meanwhile.
		go func() {
			report := c.polls.Votekick(ctx, c.serverID, c.initiator, fields[1:])
			c.printReport(report)
		}()
	case "vote":
		c.castVote(fields[1:])
	default:
		color.Yellow.Printf("unknown command %q, try help\n", fields[0])
	}
	return false
}

// castVote records a vote on the single most recent active poll:
// vote <y|n> <member-name>
func (c *console) castVote(args []string) {
	if len(args) < 2 {
		color.Yellow.Println("usage: vote <y|n> <member-name>")
		return
	}

	marker := poll.MarkerYes
	if strings.EqualFold(args[0], "n") || strings.EqualFold(args[0], "no") {
		marker = poll.MarkerNo
	}

	voter, err := c.directory.ResolveMember(args[1])
	if err != nil || voter == nil {
		color.Yellow.Printf("unknown voter %q\n", args[1])
		return
	}

	active := c.registry.Active(c.serverID)
	if len(active) == 0 {
		color.Yellow.Println("no poll is currently open")
		return
	}

	session := active[len(active)-1]
	if err := c.board.React(session.AnnouncementID, marker, voter.ID); err != nil {
		color.Red.Printf("vote not recorded: %v\n", err)
		return
	}
	color.Green.Printf("%s voted %s on the poll against %s\n", voter.DisplayName, marker, session.TargetName)
}

func (c *console) printReport(report poll.Report) {
	fmt.Println()
	switch report.Outcome {
	case poll.OutcomePassed:
		color.Green.Println(report.Summary)
	case poll.OutcomeFailed:
		color.Yellow.Println(report.Summary)
	case poll.OutcomeActionFailed:
		color.Red.Println(report.Summary)
	default:
		color.Red.Println(report.Summary)
	}
}

func (c *console) printMembers() {
	members := c.directory.Members()
	fmt.Printf("%d members:\n", len(members))
	for _, member := range members {
		kind := ""
		if member.Bot {
			kind = " (bot)"
		}
		fmt.Printf("  %s%s\n", member.DisplayName, kind)
	}
}

func (c *console) printHelp() {
	fmt.Println("commands:")
	fmt.Println("  votekick <member> <reason...>   start a removal poll")
	fmt.Println("  vote <y|n> <member-name>        cast a vote on the open poll")
	fmt.Println("  summary                         show the server summary")
	fmt.Println("  members                         list the roster")
	fmt.Println("  quit")
}
