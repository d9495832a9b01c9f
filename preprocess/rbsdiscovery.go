package preprocess

import "github.com/arqade/rdltpn/rdlt"

// discoverRBSs finds every reset-center in r and computes its RBSInfo.
func discoverRBSs(r *rdlt.RDLT) map[string]*RBSInfo {
	infos := make(map[string]*RBSInfo)
	for _, id := range r.Vertices() {
		v := r.Vertex(id)
		if v == nil || !v.IsResetCenter {
			continue
		}
		members := r.VerticesInRBS(id)
		memberSet := make(map[string]bool, len(members))
		for _, m := range members {
			memberSet[m] = true
		}
		info := &RBSInfo{Center: id, Members: memberSet}
		for _, m := range members {
			if rdlt.IsInBridge(r, m, memberSet) {
				info.InBridges = append(info.InBridges, m)
			}
			if rdlt.IsOutBridge(r, m, memberSet) {
				info.OutBridges = append(info.OutBridges, m)
			}
		}
		infos[id] = info
	}

	return infos
}

// memberOfAnyRBS reports whether id belongs to some RBS in infos.
func memberOfAnyRBS(infos map[string]*RBSInfo, id string) bool {
	for _, info := range infos {
		if info.Members[id] {
			return true
		}
	}

	return false
}

// rbsOf returns the RBSInfo id belongs to, or nil.
func rbsOf(infos map[string]*RBSInfo, id string) *RBSInfo {
	for _, info := range infos {
		if info.Members[id] {
			return info
		}
	}

	return nil
}
