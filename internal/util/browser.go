package util

import (
	"os/exec"
	"runtime"
)

// OpenBrowser 打开默认浏览器访问给定地址
// Windows 使用 rundll32（Win7+ 均可用），macOS 用 open，Linux 依次尝试常见方式
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "windows":
		if err := exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start(); err == nil {
			return nil
		}
		return exec.Command("explorer", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		err := exec.Command("xdg-open", url).Start()
		if err == nil {
			return nil
		}
		// 降级：尝试常见浏览器
		for _, browser := range []string{"google-chrome", "firefox", "chromium-browser"} {
			if e := exec.Command(browser, url).Start(); e == nil {
				return nil
			}
		}
		return err
	}
}
