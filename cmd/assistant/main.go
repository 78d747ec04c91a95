package main

// Interactive terminal client for the document assistant API:
//   go run ./cmd/assistant -addr http://localhost:8080
//
// Commands:
//   guest                    start an anonymous session
//   login <id> <email> [name]  sign in (signs a local JWT; needs JWT_SECRET)
//   logout                   end the session
//   whoami                   show the current session
//   upload <path> [title]    upload a file
//   paste <title> <text>     save pasted text as a document
//   list                     list documents
//   questions                generate interview questions from resumes
//   ask <question>           ask about the uploaded documents
//   quit

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	sessionauth "docassist-backend/internal/auth"
	sharedauth "docassist-backend/internal/shared/auth"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "API base URL")
	flag.Parse()

	state := sessionauth.NewState()
	client := newAPIClient(*addr, state)

	updates, cancel := state.Subscribe()
	defer cancel()
	go func() {
		for u := range updates {
			switch {
			case u == nil:
				fmt.Println("(signed out)")
			case u.IsAnonymous:
				fmt.Printf("(guest session %s)\n", u.UID)
			default:
				fmt.Printf("(signed in as %s)\n", u.Email)
			}
		}
	}()

	state.Clear()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			if quit := runCommand(client, state, line); quit {
				return
			}
		}
		fmt.Print("> ")
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}
}

func runCommand(client *apiClient, state *sessionauth.State, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	ctx := context.Background()

	switch cmd {
	case "quit", "exit":
		return true

	case "guest":
		id := uuid.NewString()
		client.setGuest(id)
		state.SetUser(sessionauth.User{UID: "guest:" + id, IsAnonymous: true})

	case "login":
		if len(args) < 2 {
			fmt.Println("usage: login <id> <email> [name]")
			return false
		}
		name := ""
		if len(args) > 2 {
			name = strings.Join(args[2:], " ")
		}
		token, err := sharedauth.SignJWT(sharedauth.Claims{
			Email: args[1],
			Name:  name,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject: args[0],
			},
		})
		if err != nil {
			fmt.Printf("login failed: %v\n", err)
			return false
		}
		client.setToken(token)
		state.SetUser(sessionauth.User{UID: args[0], Email: args[1], DisplayName: name})

	case "logout":
		client.clearIdentity()
		state.Clear()

	case "whoami":
		u, ready := state.CurrentUser()
		switch {
		case !ready || u == nil:
			fmt.Println("not signed in")
		case u.IsAnonymous:
			fmt.Printf("guest %s\n", u.UID)
		default:
			fmt.Printf("%s <%s>\n", u.DisplayName, u.Email)
		}

	case "upload":
		if len(args) < 1 {
			fmt.Println("usage: upload <path> [title]")
			return false
		}
		title := ""
		if len(args) > 1 {
			title = strings.Join(args[1:], " ")
		}
		if err := client.upload(ctx, args[0], title); err != nil {
			fmt.Printf("upload failed: %v\n", err)
		}

	case "paste":
		if len(args) < 2 {
			fmt.Println("usage: paste <title> <text>")
			return false
		}
		if err := client.uploadText(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
			fmt.Printf("save failed: %v\n", err)
		}

	case "list":
		if err := client.listDocuments(ctx); err != nil {
			fmt.Printf("list failed: %v\n", err)
		}

	case "questions":
		if err := client.generateQuestions(ctx); err != nil {
			fmt.Printf("generation failed: %v\n", err)
		}

	case "ask":
		if len(args) == 0 {
			fmt.Println("usage: ask <question>")
			return false
		}
		if err := client.ask(ctx, strings.Join(args, " ")); err != nil {
			fmt.Printf("ask failed: %v\n", err)
		}

	default:
		fmt.Printf("unknown command %q\n", cmd)
	}
	return false
}
