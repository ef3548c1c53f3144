package tools

import (
	"net/url"
	"strings"
)

const clusterCustom = "custom"

// ExplorerTxURL 拼接 Solana Explorer 的交易链接；cluster=custom 时附带 customUrl 指向本地节点
func ExplorerTxURL(baseURL, signature, cluster, customURL string) string {
	u := strings.TrimRight(baseURL, "/") + "/tx/" + url.PathEscape(signature)

	if cluster == "" || cluster == "mainnet-beta" {
		return u
	}
	q := url.Values{}
	q.Set("cluster", cluster)
	if cluster == clusterCustom && customURL != "" {
		q.Set("customUrl", customURL)
	}
	return u + "?" + q.Encode()
}
