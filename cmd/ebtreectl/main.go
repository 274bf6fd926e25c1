// cmd/ebtreectl/main.go
//
// ebtreectl is an interactive client for ebtreed. It uses bufio.Scanner
// for its REPL loop rather than a line-editing library: this client
// talks to a gRPC server over the network, so there is no in-process
// server prompt to synchronize against, and a plain scanner is enough.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/nainya/ebtree/proto/ebtree"
)

func main() {
	host := flag.String("host", "localhost", "ebtreed host to connect to")
	port := flag.Int("port", 50051, "ebtreed port to connect to")
	flag.Parse()

	addr := fmt.Sprintf("%s:%d", *host, *port)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to %s: %v\n", addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	client := pb.NewEBTreeServiceClient(conn)

	fmt.Printf("connected to ebtreed at %s\n", addr)
	fmt.Println("type 'help' for available commands")

	repl(client, os.Stdin, os.Stdout)
}

func repl(client pb.EBTreeServiceClient, in io.Reader, out io.Writer) {
	scanner := newLineScanner(in)
	for {
		fmt.Fprint(out, "ebtreectl> ")
		line, ok := scanner()
		if !ok {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}
		handleCommand(client, line, out)
	}
}

func handleCommand(client pb.EBTreeServiceClient, line string, out io.Writer) {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch cmd {
	case "help":
		printHelp(out)
	case "create":
		cmdCreate(ctx, client, args, out)
	case "insert":
		cmdInsert(ctx, client, args, out)
	case "lookup":
		cmdLookup(ctx, client, args, out)
	case "delete":
		cmdDelete(ctx, client, args, out)
	case "stats":
		cmdStats(ctx, client, args, out)
	case "range":
		cmdRange(ctx, client, args, out)
	case "health":
		cmdHealth(ctx, client, out)
	default:
		fmt.Fprintf(out, "unknown command %q, type 'help'\n", cmd)
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  create <tree> <u32|s32|u64|s64> [unique]")
	fmt.Fprintln(out, "  insert <tree> <key> [payload]")
	fmt.Fprintln(out, "  lookup <tree> <key> [eq|ge|le]")
	fmt.Fprintln(out, "  delete <tree> <key>")
	fmt.Fprintln(out, "  stats  <tree>")
	fmt.Fprintln(out, "  range  <tree>")
	fmt.Fprintln(out, "  health")
	fmt.Fprintln(out, "  exit")
}

func cmdCreate(ctx context.Context, client pb.EBTreeServiceClient, args []string, out io.Writer) {
	if len(args) < 2 {
		fmt.Fprintln(out, "usage: create <tree> <u32|s32|u64|s64> [unique]")
		return
	}
	unique := len(args) >= 3 && args[2] == "unique"
	resp, err := client.CreateTree(ctx, &pb.CreateTreeRequest{
		Tree:   args[0],
		Kind:   pb.KeyKind(args[1]),
		Unique: unique,
	})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "created=%v\n", resp.Created)
}

func cmdInsert(ctx context.Context, client pb.EBTreeServiceClient, args []string, out io.Writer) {
	if len(args) < 2 {
		fmt.Fprintln(out, "usage: insert <tree> <key> [payload]")
		return
	}
	key, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(out, "invalid key: %v\n", err)
		return
	}
	var payload []byte
	if len(args) >= 3 {
		payload = []byte(strings.Join(args[2:], " "))
	}
	resp, err := client.Insert(ctx, &pb.InsertRequest{Tree: args[0], Key: key, Payload: payload})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	if resp.Inserted {
		fmt.Fprintln(out, "inserted")
	} else {
		fmt.Fprintf(out, "rejected: key already present, existing payload=%q\n", resp.Existing.Payload)
	}
}

func cmdLookup(ctx context.Context, client pb.EBTreeServiceClient, args []string, out io.Writer) {
	if len(args) < 2 {
		fmt.Fprintln(out, "usage: lookup <tree> <key> [eq|ge|le]")
		return
	}
	key, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(out, "invalid key: %v\n", err)
		return
	}
	mode := pb.LookupEQ
	if len(args) >= 3 {
		mode = pb.LookupMode(args[2])
	}
	resp, err := client.Lookup(ctx, &pb.LookupRequest{Tree: args[0], Key: key, Mode: mode})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	if !resp.Found {
		fmt.Fprintln(out, "not found")
		return
	}
	fmt.Fprintf(out, "key=%d payload=%q\n", resp.Cell.Key, resp.Cell.Payload)
}

func cmdDelete(ctx context.Context, client pb.EBTreeServiceClient, args []string, out io.Writer) {
	if len(args) < 2 {
		fmt.Fprintln(out, "usage: delete <tree> <key>")
		return
	}
	key, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(out, "invalid key: %v\n", err)
		return
	}
	resp, err := client.Delete(ctx, &pb.DeleteRequest{Tree: args[0], Key: key})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "deleted=%v\n", resp.Deleted)
}

func cmdStats(ctx context.Context, client pb.EBTreeServiceClient, args []string, out io.Writer) {
	if len(args) < 1 {
		fmt.Fprintln(out, "usage: stats <tree>")
		return
	}
	resp, err := client.Stats(ctx, &pb.StatsRequest{Tree: args[0]})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "tree=%s kind=%s unique=%v cells=%d\n", resp.Tree, resp.Kind, resp.Unique, resp.CellCount)
}

func cmdRange(ctx context.Context, client pb.EBTreeServiceClient, args []string, out io.Writer) {
	if len(args) < 1 {
		fmt.Fprintln(out, "usage: range <tree>")
		return
	}
	stream, err := client.Range(ctx, &pb.RangeRequest{Tree: args[0]})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	count := 0
	for {
		cell, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "  key=%d payload=%q\n", cell.Key, cell.Payload)
		count++
	}
	fmt.Fprintf(out, "%d cells\n", count)
}

func cmdHealth(ctx context.Context, client pb.EBTreeServiceClient, out io.Writer) {
	resp, err := client.Health(ctx, &pb.HealthRequest{})
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "healthy=%v uptime=%ds\n", resp.Healthy, resp.UptimeSeconds)
}
