package collector

import (
	"fmt"
	"net"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/ftahirops/ttypanel/model"
	"github.com/ftahirops/ttypanel/util"
)

const osReleasePath = "/etc/os-release"

// SysInfoCollector samples host identity: hostname, primary IP, OS
// distribution and kernel release.
type SysInfoCollector struct {
	// Interface pins the IP lookup to a named interface. When empty the
	// first global unicast address of a real, up interface is used.
	Interface string
}

func (s *SysInfoCollector) Name() string { return "sysinfo" }

func (s *SysInfoCollector) Collect(snap *model.Snapshot) error {
	info, err := host.Info()
	if err != nil {
		return fmt.Errorf("host info: %w", err)
	}
	snap.Hostname = info.Hostname
	snap.OSName = info.Platform
	snap.OSVersion = info.PlatformVersion
	snap.Kernel = info.KernelVersion

	// Codename is not part of gopsutil's host info; os-release carries
	// it on the distributions this panel targets. Absence is fine.
	if lines, err := util.ReadFileLines(osReleasePath); err == nil {
		snap.OSCodename = util.ParseOSRelease(lines)["VERSION_CODENAME"]
	}

	ip, err := s.resolveIP()
	if err != nil {
		return err
	}
	snap.IP = ip
	return nil
}

func (s *SysInfoCollector) resolveIP() (string, error) {
	if s.Interface != "" {
		iface, err := net.InterfaceByName(s.Interface)
		if err != nil {
			return "", fmt.Errorf("interface %s: %w", s.Interface, err)
		}
		addrs, err := iface.Addrs()
		if err != nil {
			return "", fmt.Errorf("interface %s addrs: %w", s.Interface, err)
		}
		return firstGlobalUnicast(addrs), nil
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("list interfaces: %w", err)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		if virtualInterface(iface.Name) {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		if ip := firstGlobalUnicast(addrs); ip != "" {
			return ip, nil
		}
	}
	return "", nil
}

func firstGlobalUnicast(addrs []net.Addr) string {
	for _, addr := range addrs {
		ip, _, err := net.ParseCIDR(addr.String())
		if err != nil {
			continue
		}
		if ip.IsLoopback() || ip.IsLinkLocalUnicast() {
			continue
		}
		return ip.String()
	}
	return ""
}

// virtualInterface reports container/overlay interfaces that should not
// supply the host IP shown on the panel.
func virtualInterface(name string) bool {
	name = strings.ToLower(name)
	for _, prefix := range []string{"docker", "veth", "br-", "cni", "flannel", "cali", "tunl", "weave"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
