package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/replay"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/pkg/client"
)

func main() {
	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	var err error
	switch command {
	case "serve":
		err = serve()
	case "run":
		err = run(args)
	case "compare":
		err = compare(args)
	default:
		err = fmt.Errorf("unknown command %q, expected serve, run or compare", command)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func serve() error {
	cfg := config.GetSchedulerConfig()
	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}

func run(args []string) error {
	cfg := config.GetSchedulerConfig()

	flags := flag.NewFlagSet("run", flag.ExitOnError)
	policyName := flags.String("policy", "fcfs", "scheduling policy: fcfs, sjf, priority or rr")
	file := flags.String("file", "", "CSV file with name,arrival,burst[,priority] rows")
	timeQuantum := flags.Int("quantum", cfg.RoundRobinTimeQuantum, "round robin time quantum")
	server := flags.String("server", "", "schedule on a running server instead of locally")
	remote := flags.Bool("remote", false, "schedule on the configured client.server_url")
	play := flags.Bool("replay", false, "replay the gantt chart step by step")
	if err := flags.Parse(args); err != nil {
		return err
	}

	policy, err := core.ParsePolicyKind(*policyName)
	if err != nil {
		return err
	}
	request, err := loadRequest(*file, *timeQuantum)
	if err != nil {
		return err
	}

	url, err := serverURL(*server, *remote, cfg)
	if err != nil {
		return err
	}

	var schedule responses.ScheduleResponse
	if url != "" {
		schedule, err = client.NewClient(url).Schedule(policy, request)
	} else {
		schedule, err = schedulers.Schedule(policy, request, *timeQuantum)
	}
	if err != nil {
		return err
	}

	if *play {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = replay.NewPlayer(schedule.Gantt).Play(ctx, cfg.ReplayStepDelay, func(f replay.Frame) {
			fmt.Println(report.FormatSegment(f.Segment))
		})
		if err != nil {
			return err
		}
		fmt.Println()
	}
	report.WriteSchedule(os.Stdout, schedule)
	return nil
}

func compare(args []string) error {
	cfg := config.GetSchedulerConfig()

	flags := flag.NewFlagSet("compare", flag.ExitOnError)
	file := flags.String("file", "", "CSV file with name,arrival,burst,priority rows")
	timeQuantum := flags.Int("quantum", cfg.RoundRobinTimeQuantum, "round robin time quantum")
	server := flags.String("server", "", "compare on a running server instead of locally")
	remote := flags.Bool("remote", false, "compare on the configured client.server_url")
	if err := flags.Parse(args); err != nil {
		return err
	}

	request, err := loadRequest(*file, *timeQuantum)
	if err != nil {
		return err
	}

	url, err := serverURL(*server, *remote, cfg)
	if err != nil {
		return err
	}

	var result responses.CompareResponse
	if url != "" {
		result, err = client.NewClient(url).Compare(request)
	} else {
		result, err = schedulers.ScheduleAll(request, *timeQuantum)
	}
	if err != nil {
		return err
	}

	for _, schedule := range result.Results {
		report.WriteSchedule(os.Stdout, schedule)
		fmt.Println()
	}
	report.WriteComparison(os.Stdout, result)
	return nil
}

// serverURL picks the API to schedule on. An explicit -server wins over
// -remote; an empty result means scheduling locally.
func serverURL(server string, remote bool, cfg *config.SchedulerConfig) (string, error) {
	if server != "" {
		return server, nil
	}
	if !remote {
		return "", nil
	}
	if cfg.ServerURL == "" {
		return "", errors.New("-remote needs client.server_url in the config")
	}
	return cfg.ServerURL, nil
}

func loadRequest(path string, timeQuantum int) (requests.ScheduleRequests, error) {
	if path == "" {
		return requests.ScheduleRequests{}, errors.New("-file is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("opening jobs file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	jobs, err := requests.LoadJobsCSV(f)
	if err != nil {
		return requests.ScheduleRequests{}, err
	}
	return requests.ScheduleRequests{Jobs: jobs, TimeQuantum: &timeQuantum}, nil
}
