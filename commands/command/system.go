// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"fmt"

	"termfolio/commands/api"
	"termfolio/registry"
)

const (
	hostname = "portfolio"
	kernel   = "5.15.0-security-hardened"
	osName   = "Ubuntu 22.04.3 LTS"
)

func registerSystem(b *registry.Builder, d Deps) {
	p := d.Profile
	user := p.Basic.Username

	b.Handle("ls", SectionSystem, "List directories", func() api.Result { return api.Lines(listHome()...) })
	b.Handle("ls projects/", SectionSystem, "List project directories", func() api.Result { return api.Lines(listProjects(d)...) })
	b.Handle("pwd", SectionSystem, "Show current directory", func() api.Result { return api.Text(p.HomeDir()) })
	b.Handle("cd", SectionSystem, "Change directory (try cd projects)", func() api.Result {
		return api.Text(`Please specify a directory. Try "cd projects" or "cd skills"`)
	})
	b.Handle("whoami", SectionSystem, "Display username", func() api.Result {
		return api.Lines(user, "Role: "+p.Basic.Role, "Location: "+p.Basic.Location)
	})
	b.Handle("id", SectionSystem, "Display user and group IDs", func() api.Result {
		return api.Text(fmt.Sprintf("uid=1000(%[1]s) gid=1000(%[1]s) groups=1000(%[1]s),4(adm),27(sudo),999(docker)", user))
	})
	b.Handle("uname", SectionSystem, "System information", func() api.Result { return api.Text("Linux") })
	b.Register(registry.Entry{
		Key:     "uname -a",
		Section: SectionSystem,
		Hidden:  true,
		Handler: func() api.Result {
			return api.Text("Linux " + hostname + " " + kernel + " #1 SMP Mon Oct 30 14:30:15 UTC 2023 x86_64 x86_64 x86_64 GNU/Linux")
		},
	})
	b.Handle("hostname", SectionSystem, "Display hostname", func() api.Result { return api.Text(hostname) })
	b.Handle("date", SectionSystem, "Show the current date", func() api.Result {
		return api.Text(d.Now().Format("Mon Jan _2 15:04:05 MST 2006"))
	})
	b.Handle("uptime", SectionSystem, "System uptime", func() api.Result {
		now := d.Now()
		return api.Lines(
			fmt.Sprintf("%s online for: %s", p.Basic.Name, p.LifeUptime(now)),
			fmt.Sprintf("That is %s days. System stable. User enthusiasm level: 100%%", p.DaysOnline(now)),
		)
	})
	b.Handle("ps", SectionSystem, "Running processes", func() api.Result {
		return api.Lines(
			"PID    COMMAND                CPU    MEM    TIME",
			"1234   learning               25%    12MB   ongoing",
			"5678   coding                 40%    18MB   daily",
			"9012   securing               35%    15MB   always",
			"3456   cloud-architecture     10%    8MB    weekly",
			"7890   aws-architecting       45%    22MB   24/7",
		)
	})
	b.Handle("neofetch", SectionSystem, "System information", func() api.Result { return api.Lines(neofetch(d)...) })
	b.Handle("history", SectionSystem, "Command history", func() api.Result {
		// The session answers history itself; this is reached only without one.
		return api.Text("history: no session history available")
	})
	b.Recognize("clear", SectionSystem, "Clear terminal screen")
	b.Handle("restart", SectionSystem, "Restart terminal", func() api.Result { return api.Restart() })
	b.Handle("exit", SectionSystem, "Leave the terminal", func() api.Result {
		return api.Text("Exit command handled by terminal interface.")
	})
	b.Alias("quit", "exit")
}

func listHome() []string {
	dir := tag("blue", "drwxr-xr-x")
	file := tag("green", "-rw-r--r--")
	return []string{
		dir + "  about/",
		dir + "  skills/",
		dir + "  projects/",
		dir + "  certs/",
		dir + "  contact/",
		file + "  README.md",
		file + "  resume.pdf",
	}
}

func listProjects(d Deps) []string {
	out := make([]string, 0, len(d.Profile.Projects)+1)
	for _, p := range d.Profile.Projects {
		out = append(out, tag("blue", "drwxr-xr-x")+"  "+p.Slug+"/")
	}
	return append(out, tag("green", "-rw-r--r--")+"  README.md")
}

func neofetch(d Deps) []string {
	p := d.Profile
	packages := 0
	for _, g := range p.Skills {
		packages += len(g.Skills)
	}
	ident := p.Basic.Username + "@" + hostname
	return []string{
		"                     " + tag("green", ident),
		"                     " + tag("green", rule(len(ident))),
		tag("green", "OS:") + "             " + osName + " x86_64",
		tag("green", "Host:") + "           Portfolio Terminal",
		tag("green", "Kernel:") + "         " + kernel,
		tag("green", "Uptime:") + "         " + p.LifeUptime(d.Now()),
		tag("green", "Packages:") + "       " + fmt.Sprintf("%d core tools installed", packages),
		tag("green", "Shell:") + "          bash 5.1.16",
		tag("green", "Terminal:") + "       termfolio",
		tag("green", "CPU:") + "            Coffee-powered Brain (8) @ 3.2GHz",
		tag("green", "Memory:") + "         Unlimited curiosity / 16384MiB",
		tag("green", "Role:") + "           " + p.Basic.Role,
		"",
		"                     " + tag("yellow", "Status: Ready for new challenges!"),
	}
}
